package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/networth-backend/internal/adapter/grpc"
	"github.com/simaogato/networth-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/networth-backend/internal/analytics"
	"github.com/simaogato/networth-backend/internal/config"
	"github.com/simaogato/networth-backend/internal/format"
	"github.com/simaogato/networth-backend/internal/logger"
	"github.com/simaogato/networth-backend/internal/usecase/asset"
	"github.com/simaogato/networth-backend/internal/usecase/dashboard"
	"github.com/simaogato/networth-backend/internal/usecase/seeder"
	"github.com/simaogato/networth-backend/internal/usecase/valuation"
	"github.com/simaogato/networth-backend/internal/usecase/widget"
)

const (
	dbConnectTimeout = 30 * time.Second
	dbRetryInterval  = 2 * time.Second
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := logger.WithContext(context.Background(), log)

	loc, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid timezone")
	}
	firstWeekday, err := cfg.Calendar.FirstWeekday()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid week start")
	}
	cal := analytics.NewGregorian(loc, firstWeekday)

	// 2. Setup Database (retry until Postgres accepts connections)
	connectCtx, cancel := context.WithTimeout(ctx, dbConnectTimeout)
	db, err := postgres.Connect(connectCtx, cfg.Database.DSN(), dbRetryInterval)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	if version, err := postgres.SchemaVersion(ctx, db); err == nil {
		log.Info().Int64("schema_version", version).Msg("Database schema up to date")
	}

	// 3. Initialize Repositories (Postgres)
	assetRepo := postgres.NewAssetRepository(db)
	valueRepo := postgres.NewAssetValueRepository(db)
	snapshotRepo := postgres.NewWidgetSnapshotRepository(db)

	// 4. Initialize Services (Use Cases)
	formatter := format.New(cfg.Display.CurrencyCode, cfg.Display.Anonymize)
	dashboardService := dashboard.NewDashboardService(assetRepo, valueRepo, cal)
	publisher := widget.NewPublisher(dashboardService, snapshotRepo, formatter, cal)
	assetService := asset.NewAssetService(assetRepo, valueRepo, publisher)
	valuationService := valuation.NewValuationService(assetRepo, valueRepo, publisher)

	if cfg.DemoMode {
		if err := seeder.NewDemoSeeder(assetRepo, valueRepo).Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo assets")
		}
		log.Info().Int("assets", len(seeder.DemoAssets)).Msg("Demo assets seeded")
	}

	// Publish a fresh widget snapshot so widgets never read stale data after a restart
	if _, err := publisher.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to publish widget snapshot")
	}

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)

	grpcadapter.RegisterNetWorthServiceServer(grpcServer, grpcadapter.NewServer(
		assetService,
		valuationService,
		dashboardService,
		publisher,
		formatter,
		loc,
	))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Server.Addr).Msg("Failed to listen")
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, healthServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, healthServer *health.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully")

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")
}
