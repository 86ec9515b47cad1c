package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	proposalspb "github.com/advisorhq/proposal-pipeline/gen/proto/proposals/v1"
	"github.com/advisorhq/proposal-pipeline/internal/analysis"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/export"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/match"
	"github.com/advisorhq/proposal-pipeline/internal/orchestrator"
	"github.com/advisorhq/proposal-pipeline/internal/pipeline"
	"github.com/advisorhq/proposal-pipeline/internal/render"
	repo "github.com/advisorhq/proposal-pipeline/internal/repository"
	svc "github.com/advisorhq/proposal-pipeline/internal/server"
	"github.com/advisorhq/proposal-pipeline/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	proposalsRepo := repo.NewProposalRepository(entc, logger)
	illustrationsRepo := repo.NewIllustrationRepository(entc, logger)
	productsRepo := repo.NewProductRepository(entc, logger)
	jobsRepo := repo.NewAnalysisJobRepository(entc, logger)

	blobs, err := storage.NewFSBlobStore(cfg.Storage.BlobDir, logger)
	if err != nil {
		logger.Error("failed to open blob store", "dir", cfg.Storage.BlobDir, "error", err)
		os.Exit(1)
	}

	extractor := extract.NewClient(extract.ClientConfig{
		BaseURL: cfg.Extractor.BaseURL,
		APIKey:  cfg.Extractor.APIKey,
		Timeout: cfg.Extractor.Timeout,
	}, logger)

	matcher := match.NewMatcher(match.NewRepositoryCatalog(productsRepo), match.Config{
		AcceptThreshold: cfg.Matcher.AcceptThreshold,
		CandidateFloor:  cfg.Matcher.CandidateFloor,
		MaxCandidates:   cfg.Matcher.MaxCandidates,
	}, logger)

	renderer := render.NewPDFRenderer(proposalsRepo, illustrationsRepo, jobsRepo, logger)

	extractStage := pipeline.NewExtractStage(illustrationsRepo, blobs, extractor, pipeline.ExtractConfig{
		MaxAttempts:    cfg.Pipeline.MaxAttempts,
		RetryBackoff:   cfg.Pipeline.RetryBackoff,
		ExtractTimeout: cfg.Pipeline.ExtractTimeout,
	}, logger)
	matchStage := pipeline.NewMatchStage(illustrationsRepo, matcher, logger)
	generateStage := pipeline.NewGenerateStage(proposalsRepo, renderer, logger)

	locks := common.NewKeyedMutex()

	// the coordinator's cache invalidator is wired after the orchestrator
	// exists; the processor only needs the coordinator itself
	coordinator := analysis.NewCoordinator(jobsRepo, illustrationsRepo, nil, logger)
	processor := pipeline.NewProcessor(logger, extractStage, matchStage, generateStage,
		coordinator, proposalsRepo, illustrationsRepo, locks)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ExtractTimeout+time.Minute),
	)

	service := orchestrator.NewService(proposalsRepo, illustrationsRepo, productsRepo, jobsRepo,
		blobs, queue, renderer, cfg.Pipeline.PageCacheTTL, locks, logger)
	coordinator.Cache = service

	exporter := export.NewService(proposalsRepo, illustrationsRepo, jobsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	proposalspb.RegisterProposalsServiceServer(grpcServer, svc.NewProposalsService(service, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("proposald listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
