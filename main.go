package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"jobcast/domain/repository"
	"jobcast/infrastructure/cache"
	chainclient "jobcast/infrastructure/clients/chain"
	"jobcast/infrastructure/clients/neynar"
	"jobcast/infrastructure/configuration"
	"jobcast/infrastructure/logger"
	"jobcast/infrastructure/persistence"
	httpHandler "jobcast/interfaces/http"
	"jobcast/server"
	"jobcast/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	jobRepository := initiateJobStore()

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.Redis.Host, configuration.C.Redis.Port),
		configuration.C.Redis.Username,
		configuration.C.Redis.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - cast stats will be no-ops")
		redisClient = nil
	}
	castStats := cache.NewCastStats(redisClient)

	var socialUsecase usecase.ISocialUsecase
	var authUsecase usecase.IAuthUsecase
	neynarClient, err := neynar.NewClient(neynar.Config{
		APIKey:  configuration.C.Neynar.APIKey,
		BaseURL: configuration.C.Neynar.BaseURL,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Neynar client not configured - social features will be disabled")
	} else {
		socialUsecase = usecase.NewSocialUsecase(neynarClient)
		authUsecase = usecase.NewAuthUsecase(socialUsecase, app)
	}

	var paymentUsecase usecase.IPaymentUsecase
	chainClient, err := chainclient.NewClient(ctx, configuration.C.Chain.RPCURL)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Chain RPC not configured - payment verification will be disabled")
	} else {
		paymentUsecase = usecase.NewPaymentUsecase(chainClient, jobRepository, configuration.C.Payment)
	}

	jobUsecase := usecase.NewJobUsecase(jobRepository)
	webhookUsecase := usecase.NewWebhookUsecase(castStats)

	router := server.InitiateRouter(
		httpHandler.NewJobHandler(jobUsecase),
		httpHandler.NewCastHandler(socialUsecase),
		httpHandler.NewReactionHandler(socialUsecase),
		httpHandler.NewFeedHandler(socialUsecase),
		httpHandler.NewAuthHandler(authUsecase),
		httpHandler.NewPaymentHandler(paymentUsecase),
		httpHandler.NewWebhookHandler(webhookUsecase),
		authUsecase,
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateJobStore wires the Postgres-backed job repository with the demo-data
// fallback. Without a reachable database the memory store serves alone, so the
// API stays browsable with demo jobs.
func initiateJobStore() repository.IJob {
	memory := persistence.NewMemoryJobRepository(persistence.DemoJobs())

	db, err := persistence.NewPostgreSQLDB()
	if err != nil {
		if configuration.C.Store.FailFast {
			logger.GetLogger().WithField("error", err).Error("Database initialization failed and fail-fast is set")
			os.Exit(1)
		}
		logger.GetLogger().WithField("error", err).Warn("Database not available - serving demo jobs from memory")
		return memory
	}
	if err := persistence.EnsureJobsSchema(db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed ensuring jobs schema")
	}
	logger.GetLogger().Info("Database connected.")

	primary := persistence.NewJobRepository(db)
	return persistence.NewFallbackJobRepository(primary, memory, configuration.C.Store.FailFast)
}
