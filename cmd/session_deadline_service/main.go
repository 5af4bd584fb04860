package main

import (
	"time"

	"meal_voting_system/configs"
	"meal_voting_system/internal/db"
	"meal_voting_system/internal/db/repositories"
	"meal_voting_system/internal/di"
	"meal_voting_system/internal/pubsub"
	"meal_voting_system/internal/session"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Standalone deadline enforcement, for deployments where the API process
// is not running. Transitions commit against the store exactly as they
// would in-process; real-time subscribers of a separate API process simply
// re-sync on their next fetch.
func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()

	logger.Info("loading config")
	config, err := configs.LoadDeadlineServiceConfig()
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

	// No websocket clients attach to this process; the publisher has zero
	// subscribers and every publish is a no-op by design.
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

	cron := gocron.NewScheduler(time.UTC)
	if _, err := cron.Every(config.Session.SchedulerInterval()).Do(scheduler.Scan); err != nil {
		logger.Fatalw("failed to schedule deadline scan", "error", err)
	}

	logger.Infow("starting deadline scan", "interval", config.Session.SchedulerInterval())
	cron.StartBlocking()
}
