package event

// Exchange names, one per bounded context.
const (
	UserExchange  = "user_events"
	EventExchange = "event_events"
)

// Routing keys published by the platform services.
const (
	KeyUserEnrolled        = "user.enrolled"
	KeyUserSessionAttended = "user.session.attended"
	KeyEventCreated        = "event.created"
)

// UserEnrolled records that a user enrolled in (or withdrew from) an event.
type UserEnrolled struct {
	UserID   string `json:"userId"`
	EventID  string `json:"eventId"`
	Enrolled bool   `json:"enrolled"`
}

func (UserEnrolled) Exchange() string   { return UserExchange }
func (UserEnrolled) RoutingKey() string { return KeyUserEnrolled }

// UserSessionAttended records attendance of a session within an event.
type UserSessionAttended struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	EventID   string `json:"eventId"`
	Attended  bool   `json:"attended"`
}

func (UserSessionAttended) Exchange() string   { return UserExchange }
func (UserSessionAttended) RoutingKey() string { return KeyUserSessionAttended }

// EventCreated announces a newly created conference event.
type EventCreated struct {
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	StartAt string `json:"startAt,omitempty"`
}

func (EventCreated) Exchange() string   { return EventExchange }
func (EventCreated) RoutingKey() string { return KeyEventCreated }

func init() {
	Register(KeyUserEnrolled, func() Event { return &UserEnrolled{} })
	Register(KeyUserSessionAttended, func() Event { return &UserSessionAttended{} })
	Register(KeyEventCreated, func() Event { return &EventCreated{} })
}
