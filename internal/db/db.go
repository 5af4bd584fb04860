package db

import (
	"context"
	"meal_voting_system/configs"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type dbLogger struct {
	logger *zap.SugaredLogger
}

func (d dbLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	d.logger.Debug(string(query))
	return c, nil
}

func (d dbLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	return nil
}

// StartDB connects to Postgres and brings the schema up to date from the
// SQL files in migrations/.
func StartDB(config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		logger.Errorw("failed to parse db url", "error", err)
		return nil, err
	}

	database := pg.Connect(options)
	database.AddQueryHook(dbLogger{logger})

	if err := runMigrations(database, logger); err != nil {
		return nil, err
	}

	return database, nil
}

func runMigrations(database *pg.DB, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()

	if err := collection.DiscoverSQLMigrations("migrations"); err != nil {
		logger.Errorw("failed to discover migrations", "error", err)
		return err
	}

	if _, _, err := collection.Run(database, "init"); err != nil {
		logger.Errorw("failed to init migrations", "error", err)
		return err
	}

	oldVersion, newVersion, err := collection.Run(database, "up")
	if err != nil {
		logger.Errorw("failed to run migrations", "error", err)
		return err
	}

	if newVersion != oldVersion {
		logger.Infof("migrated from version %d to %d", oldVersion, newVersion)
	} else {
		logger.Infof("schema version is %d", oldVersion)
	}

	return nil
}
