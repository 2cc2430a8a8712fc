package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/destiny-api/internal/engine/itempower"
	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
	"github.com/KirkDiggler/destiny-api/internal/orchestrators/destiny"
	"github.com/KirkDiggler/destiny-api/internal/pkg/clock"
	"github.com/KirkDiggler/destiny-api/internal/pkg/idgen"
	"github.com/KirkDiggler/destiny-api/internal/repositories/catalog"
	"github.com/KirkDiggler/destiny-api/internal/repositories/profile"
)

var serverFlags configFlags

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Destiny API gRPC server with the catalog, taxonomy and profile store configured.`,
	RunE:  runServer,
}

func init() {
	serverFlags.register(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := serverFlags.load(cmd)
	if err != nil {
		return err
	}

	schema, err := loadSchema(cfg.TaxonomyPath)
	if err != nil {
		return err
	}

	quality, err := itempower.LoadQualitySchedule(cfg.QualityPath)
	if err != nil {
		return err
	}

	catalogRepo, err := catalog.NewFile(cfg.CatalogPath)
	if err != nil {
		return err
	}

	redisClient, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close()
	}()

	profileRepo, err := profile.NewRedis(&profile.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create profile repository: %w", err)
	}

	orchestrator, err := destiny.New(&destiny.Config{
		CatalogRepo:              catalogRepo,
		ProfileRepo:              profileRepo,
		Schema:                   schema,
		IDGenerator:              idgen.NewUUID("profile"),
		Quality:                  quality,
		MasteryModifierBonusRate: cfg.MasteryModifierBonusRate,
	})
	if err != nil {
		return fmt.Errorf("failed to create destiny orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DestinyService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create destiny handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	recovery := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)

	v1alpha1.RegisterDestinyServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
