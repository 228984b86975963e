package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"pitch/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

// New opens the read and write pools. Postgres is only dialled when it backs the slot ledger.
func New(cfg *config.Config) *Connection {
	if cfg.App.Booking.LedgerDriver != config.LedgerDriverPostgres {
		return nil
	}

	pg := cfg.DB.Postgres

	write := endpoint{
		name:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		dbName:   DBName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}

	read := endpoint{
		name:     "read",
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		dbName:   DBName(cfg, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}

	if read.host == "" {
		read = write
		read.name = "read"
	}

	writeDB := connect(write, pg.MaxRetry, pg.RetryWaitTime)
	if writeDB == nil {
		log.Fatal().Str("host", write.host).Msg("Could not connect to the write database")
	}

	readDB := connect(read, pg.MaxRetry, pg.RetryWaitTime)
	if readDB == nil {
		log.Fatal().Str("host", read.host).Msg("Could not connect to the read database")
	}

	return &Connection{
		Read:  readDB,
		Write: writeDB,
	}
}

// DBName returns the database name with prefix if configured
func DBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// URL builds the postgres:// connection string for the given credentials.
func URL(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

func connect(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	descriptor := URL(e.username, e.password, e.host, e.port, e.dbName, e.sslMode)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", e.name).
				Str("host", e.host).
				Str("port", e.port).
				Str("dbName", e.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", e.name).
			Str("host", e.host).
			Str("port", e.port).
			Str("dbName", e.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
