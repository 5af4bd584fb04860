package main

import (
	"time"

	"meal_voting_system/configs"
	"meal_voting_system/internal/db"
	"meal_voting_system/internal/db/repositories"
	"meal_voting_system/internal/di"
	"meal_voting_system/internal/handlers"
	"meal_voting_system/internal/pubsub"
	"meal_voting_system/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadAPIConfig()
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger = di.NewLogger(config.Logger)
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	sessionRepository := repositories.NewSessionRepository(database)
	proposalRepository := repositories.NewProposalRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	confirmationRepository := repositories.NewConfirmationRepository(database)
	groupRepository := repositories.NewGroupRepository(database)
	mealRepository := repositories.NewMealRepository(database)
	snapshotRepository := repositories.NewSnapshotRepository(database)

	publisher := pubsub.NewPublisher(logger)
	dispatcher := session.NewDispatcher(snapshotRepository, publisher, logger)
	clock := session.SystemClock()

	manager := session.NewManager(
		sessionRepository,
		proposalRepository,
		voteRepository,
		confirmationRepository,
		groupRepository,
		mealRepository,
		dispatcher,
		clock,
		config.Session.VotingDuration(),
		logger,
	)

	scheduler := session.NewScheduler(sessionRepository, manager, clock, logger)

	// The deadline scan runs inside the API process so scheduler-driven
	// transitions reach the same websocket subscribers as user-driven ones.
	cron := gocron.NewScheduler(time.UTC)
	if _, err := cron.Every(config.Session.SchedulerInterval()).Do(scheduler.Scan); err != nil {
		logger.Fatalw("failed to schedule deadline scan", "error", err)
	}
	cron.StartAsync()

	httpHandler := handlers.NewHTTPHandler(
		manager,
		snapshotRepository,
		publisher,
		config.Session.DefaultProposalDuration(),
		logger,
	)

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	httpHandler.RegisterRoutes(router)

	logger.Infow("starting server", "address", config.Server.Address)
	if err := router.Run(config.Server.Address); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
