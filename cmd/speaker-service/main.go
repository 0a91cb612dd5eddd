// The speaker service owns conference speakers. It answers speaker existence
// checks over gRPC and follows event lifecycle announcements so speakers can
// be pre-provisioned for new events.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	healthv1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/next-trace/scg-conference-bus/adapters/nats"
	"github.com/next-trace/scg-conference-bus/adapters/rabbitmq"
	validationv1 "github.com/next-trace/scg-conference-bus/api/gen/go/validation/v1"
	"github.com/next-trace/scg-conference-bus/config"
	cbus "github.com/next-trace/scg-conference-bus/contract/bus"
	"github.com/next-trace/scg-conference-bus/contract/event"
	"github.com/next-trace/scg-conference-bus/metrics"
	"github.com/next-trace/scg-conference-bus/storage/sqlite"
	"github.com/next-trace/scg-conference-bus/telemetry"
	"github.com/next-trace/scg-conference-bus/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to parse environment variables: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	reg := metrics.NewRegistry()

	metricsServer := metrics.NewServer(cfg.Metrics, reg, logger)
	go func() {
		if err := metricsServer.Start(); err != nil {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	consumer, busCleanup, err := newConsumer(cfg, logger, reg, telemetry.New())
	if err != nil {
		logger.Fatal("failed to initialize broker", zap.Error(err))
	}
	defer busCleanup()

	sub := cbus.Subscription{
		Exchange: event.EventExchange,
		Patterns: []string{event.KeyEventCreated},
	}
	if err := consumer.Subscribe(ctx, sub, handleEventCreated(logger)); err != nil {
		logger.Fatal("failed to subscribe", zap.Error(err))
	}

	grpcServer, healthServer := validation.NewGRPCServer()
	validationv1.RegisterSpeakerValidationServiceServer(grpcServer, validation.NewSpeakerServer(store, logger, reg))
	healthServer.SetServingStatus("", healthv1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Validation.Port))
	if err != nil {
		logger.Fatal("failed to listen", zap.Int("port", cfg.Validation.Port), zap.Error(err))
	}

	go func() {
		logger.Info("speaker validation service listening", zap.String("addr", lis.Addr().String()))

		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc server failed", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	healthServer.SetServingStatus("", healthv1.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", zap.Error(err))
	}
}

// newConsumer selects the broker transport. RabbitMQ is the durable default;
// NATS serves deployments that already run it.
func newConsumer(cfg config.Service, logger *zap.Logger, reg *metrics.Registry, prop cbus.HeaderPropagator) (cbus.Consumer, func(), error) {
	if cfg.Driver == "nats" {
		ad, cleanup, err := nats.NewWithNATS(cfg.NATS)
		if err != nil {
			return nil, nil, err
		}

		ad.Propagator = prop

		return ad, cleanup, nil
	}

	conn := rabbitmq.Dial(cfg.Broker, logger, rabbitmq.WithConnMetrics(reg))
	consumer := rabbitmq.NewConsumer(conn, logger,
		rabbitmq.WithConsumerPropagator(prop),
		rabbitmq.WithConsumerMetrics(reg),
	)

	return consumer, conn.Close, nil
}

func handleEventCreated(logger *zap.Logger) cbus.Handler {
	return func(_ context.Context, d cbus.Delivery) error {
		e, env, err := event.Decode(d.RoutingKey, d.Body)
		if err != nil {
			return err
		}

		created, ok := e.(*event.EventCreated)
		if !ok {
			return fmt.Errorf("unexpected event type for %s", d.RoutingKey)
		}

		logger.Info("event created",
			zap.String("event_id", created.EventID),
			zap.String("name", created.Name),
			zap.Time("at", env.Timestamp),
		)

		return nil
	}
}

func newLogger(level string) *zap.Logger {
	zapConfig := zap.NewProductionConfig()

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		log.Printf("invalid log level %q, defaulting to info: %v", level, err)
		zapLevel = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	return logger.Named("speaker-service")
}
