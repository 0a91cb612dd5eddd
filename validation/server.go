// Package validation exposes synchronous existence checks over gRPC so a
// service can verify a cross-service reference before committing a local
// write. Checks are read-only and a soft-deleted entity reports exists=false.
package validation

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"

	validationv1 "github.com/next-trace/scg-conference-bus/api/gen/go/validation/v1"
	"github.com/next-trace/scg-conference-bus/metrics"
)

// Response messages are part of the public contract; callers display them verbatim.
const (
	MsgSessionExists   = "Session exists"
	MsgSessionNotFound = "Session not found"
	MsgSpeakerExists   = "Speaker already exists."
	MsgSpeakerNotFound = "Speaker not found!"
)

// SessionServer serves SessionValidationService backed by a SessionStore.
type SessionServer struct {
	validationv1.UnimplementedSessionValidationServiceServer

	store SessionStore
	log   *zap.Logger
	reg   *metrics.Registry
}

// NewSessionServer builds a session validation handler. logger may be nil.
func NewSessionServer(store SessionStore, logger *zap.Logger, reg *metrics.Registry) *SessionServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionServer{store: store, log: logger, reg: reg}
}

func (s *SessionServer) ValidateSession(ctx context.Context, req *validationv1.ValidateSessionRequest) (*validationv1.ValidationResponse, error) {
	if req.GetSessionId() == "" {
		s.reg.ValidationRPC("ValidateSession", "invalid")
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	exists, err := s.store.SessionExists(ctx, req.GetSessionId())
	if err != nil {
		s.log.Error("session lookup failed", zap.String("session_id", req.GetSessionId()), zap.Error(err))
		s.reg.ValidationRPC("ValidateSession", "error")

		return nil, status.Error(codes.Internal, "session lookup failed")
	}

	s.reg.ValidationRPC("ValidateSession", outcome(exists))

	if !exists {
		return &validationv1.ValidationResponse{Exists: false, Message: MsgSessionNotFound}, nil
	}

	return &validationv1.ValidationResponse{Exists: true, Message: MsgSessionExists}, nil
}

// SpeakerServer serves SpeakerValidationService backed by a SpeakerStore.
type SpeakerServer struct {
	validationv1.UnimplementedSpeakerValidationServiceServer

	store SpeakerStore
	log   *zap.Logger
	reg   *metrics.Registry
}

// NewSpeakerServer builds a speaker validation handler. logger may be nil.
func NewSpeakerServer(store SpeakerStore, logger *zap.Logger, reg *metrics.Registry) *SpeakerServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SpeakerServer{store: store, log: logger, reg: reg}
}

func (s *SpeakerServer) ValidateSpeaker(ctx context.Context, req *validationv1.ValidateSpeakerRequest) (*validationv1.ValidationResponse, error) {
	if req.GetSpeakerId() == "" {
		s.reg.ValidationRPC("ValidateSpeaker", "invalid")
		return nil, status.Error(codes.InvalidArgument, "speaker_id is required")
	}

	exists, err := s.store.SpeakerExists(ctx, req.GetSpeakerId())
	if err != nil {
		s.log.Error("speaker lookup failed", zap.String("speaker_id", req.GetSpeakerId()), zap.Error(err))
		s.reg.ValidationRPC("ValidateSpeaker", "error")

		return nil, status.Error(codes.Internal, "speaker lookup failed")
	}

	s.reg.ValidationRPC("ValidateSpeaker", outcome(exists))

	if !exists {
		return &validationv1.ValidationResponse{Exists: false, Message: MsgSpeakerNotFound}, nil
	}

	return &validationv1.ValidationResponse{Exists: true, Message: MsgSpeakerExists}, nil
}

func outcome(exists bool) string {
	if exists {
		return "found"
	}

	return "not_found"
}

// NewGRPCServer builds a gRPC server with otel instrumentation and a health
// service already registered, ready for RegisterSessionValidationServiceServer
// or RegisterSpeakerValidationServiceServer.
func NewGRPCServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))

	healthServer := health.NewServer()
	healthv1.RegisterHealthServer(srv, healthServer)

	return srv, healthServer
}
