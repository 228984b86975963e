package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"pitch/config"
	"pitch/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	defaultSourceURL = "file://migrations/postgres"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getConnection(config *config.Config, sourceURL string) (*migrate.Migrate, error) {
	write := config.DB.Postgres.Write
	connectionString := postgres.URL(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		postgres.DBName(config, write.Name),
		write.SSLMode,
	) + "&x-migrations-table=" + config.DB.Postgres.MigrationTable

	mig, err := migrate.New(sourceURL, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write database.
func Runner(config *config.Config, action, sourceURL string) error {
	if sourceURL == "" {
		sourceURL = defaultSourceURL
	}

	mig, err := getConnection(config, sourceURL)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}
