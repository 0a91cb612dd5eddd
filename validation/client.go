package validation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"

	validationv1 "github.com/next-trace/scg-conference-bus/api/gen/go/validation/v1"
	berr "github.com/next-trace/scg-conference-bus/contract/errors"
	"github.com/next-trace/scg-conference-bus/metrics"
)

const (
	defaultCallTimeout = 3 * time.Second
	defaultRetries     = 2
)

// Result is the outcome of a validation call that reached the remote service.
// Exists=false is a definitive answer, not an error.
type Result struct {
	Exists  bool
	Message string
}

// Client calls the validation services of a remote conference service.
// The connection is created lazily on first use and reused afterwards.
type Client struct {
	addr    string
	timeout time.Duration
	retries int
	log     *zap.Logger
	reg     *metrics.Registry
	dialOps []grpc.DialOption

	mu   sync.Mutex
	conn *grpc.ClientConn
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithCallTimeout overrides the per-attempt deadline.
func WithCallTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries overrides how many extra attempts are made when the remote is unavailable.
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithClientLogger attaches a logger for retry warnings.
func WithClientLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClientMetrics attaches a metrics registry.
func WithClientMetrics(reg *metrics.Registry) ClientOption {
	return func(c *Client) { c.reg = reg }
}

// WithDialOptions appends extra grpc dial options, used by tests to target
// in-process listeners.
func WithDialOptions(opts ...grpc.DialOption) ClientOption {
	return func(c *Client) { c.dialOps = append(c.dialOps, opts...) }
}

// NewClient builds a validation client for addr (host:port).
func NewClient(addr string, opts ...ClientOption) *Client {
	c := &Client{
		addr:    addr,
		timeout: defaultCallTimeout,
		retries: defaultRetries,
		log:     zap.NewNop(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Close releases the underlying connection, if one was established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil

	return err
}

// ValidateSession asks the session service whether a session exists.
// A reachable service answering "not found" returns Exists=false and nil error;
// an unreachable service or failed RPC returns an error wrapping ErrValidationFailed.
func (c *Client) ValidateSession(ctx context.Context, sessionID string) (Result, error) {
	conn, err := c.dial()
	if err != nil {
		return Result{}, err
	}

	cl := validationv1.NewSessionValidationServiceClient(conn)

	var resp *validationv1.ValidationResponse

	err = c.invoke(ctx, "ValidateSession", func(ctx context.Context) error {
		var callErr error
		resp, callErr = cl.ValidateSession(ctx, &validationv1.ValidateSessionRequest{SessionId: sessionID})

		return callErr
	})
	if err != nil {
		c.reg.ValidationRPC("ValidateSession", "error")
		return Result{}, fmt.Errorf("validate session %s: %w", sessionID, errors.Join(berr.ErrValidationFailed, err))
	}

	c.reg.ValidationRPC("ValidateSession", outcome(resp.GetExists()))

	return Result{Exists: resp.GetExists(), Message: resp.GetMessage()}, nil
}

// ValidateSpeaker asks the speaker service whether a speaker exists.
func (c *Client) ValidateSpeaker(ctx context.Context, speakerID string) (Result, error) {
	conn, err := c.dial()
	if err != nil {
		return Result{}, err
	}

	cl := validationv1.NewSpeakerValidationServiceClient(conn)

	var resp *validationv1.ValidationResponse

	err = c.invoke(ctx, "ValidateSpeaker", func(ctx context.Context) error {
		var callErr error
		resp, callErr = cl.ValidateSpeaker(ctx, &validationv1.ValidateSpeakerRequest{SpeakerId: speakerID})

		return callErr
	})
	if err != nil {
		c.reg.ValidationRPC("ValidateSpeaker", "error")
		return Result{}, fmt.Errorf("validate speaker %s: %w", speakerID, errors.Join(berr.ErrValidationFailed, err))
	}

	c.reg.ValidationRPC("ValidateSpeaker", outcome(resp.GetExists()))

	return Result{Exists: resp.GetExists(), Message: resp.GetMessage()}, nil
}

func (c *Client) dial() (*grpc.ClientConn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.conn, nil
	}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, c.dialOps...)

	conn, err := grpc.NewClient(c.addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("validation dial %s: %w", c.addr, errors.Join(berr.ErrNotConnected, err))
	}

	c.conn = conn

	return conn, nil
}

// invoke runs the call with a per-attempt deadline, retrying only when the
// remote reports Unavailable. Other status codes are definitive answers.
func (c *Client) invoke(ctx context.Context, method string, call func(context.Context) error) error {
	var last error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := call(attemptCtx)
		cancel()

		if err == nil {
			return nil
		}

		last = err

		if status.Code(err) != codes.Unavailable {
			return err
		}

		c.log.Warn("validation call unavailable, retrying",
			zap.String("method", method),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return last
}
