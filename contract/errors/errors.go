package errors

// Error codes for the consistency layer. Keep stable; used across adapters and services.
const (
	ErrCodeNotConnected        = "conferencebus.not_connected"
	ErrCodePublishFailed       = "conferencebus.publish_failed"
	ErrCodeSerializationFailed = "conferencebus.serialization_failed"
	ErrCodeDecodeFailed        = "conferencebus.decode_failed"
	ErrCodeUnknownRoutingKey   = "conferencebus.unknown_routing_key"
	ErrCodeSubscribeFailed     = "conferencebus.subscribe_failed"
	ErrCodeHandlerFailed       = "conferencebus.handler_failed"
	ErrCodeValidationFailed    = "conferencebus.validation_failed"
	ErrCodeStoreFailed         = "conferencebus.store_failed"
)

// Code returns an error value that carries only a code string.
// It implements error by returning the code string in Error().
func Code(code string) error { return codedError(code) }

type codedError string

func (e codedError) Error() string { return string(e) }

var (
	ErrNotConnected        = Code(ErrCodeNotConnected)
	ErrPublishFailed       = Code(ErrCodePublishFailed)
	ErrSerializationFailed = Code(ErrCodeSerializationFailed)
	ErrDecodeFailed        = Code(ErrCodeDecodeFailed)
	ErrUnknownRoutingKey   = Code(ErrCodeUnknownRoutingKey)
	ErrSubscribeFailed     = Code(ErrCodeSubscribeFailed)
	ErrHandlerFailed       = Code(ErrCodeHandlerFailed)
	ErrValidationFailed    = Code(ErrCodeValidationFailed)
	ErrStoreFailed         = Code(ErrCodeStoreFailed)
)
