package database

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the storage backend. Path is used by sqlite, URL by postgres.
type Options struct {
	Driver   string
	Path     string
	URL      string
	LogLevel string // silent | error | warn | info
}

// Open connects to the database, caps the pool to a single shared connection
// and applies the schema migrations. The caller owns the returned handle and
// must release it with Close.
func Open(opts Options) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		dialect   string
	)
	switch opts.Driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(opts.Path)
		dialect = "sqlite3"
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  opts.URL,
			PreferSimpleProtocol: true,
		})
		dialect = "postgres"
	default:
		return nil, fmt.Errorf("unsupported driver %q", opts.Driver)
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	newLogger := logger.New(
		&gormLog,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(opts.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One connection for the whole process.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := migrate(sqlDB, dialect); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("driver", opts.Driver).Msg("database connection established")
	return db, nil
}

// Close releases the shared connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func migrate(sqlDB *sql.DB, dialect string) error {
	dir := "migrations/sqlite"
	if dialect == "postgres" {
		dir = "migrations/postgres"
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log.With().Str("component", "goose").Logger()})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(sqlDB, dir)
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

type gooseLogger struct {
	l zerolog.Logger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Fatal().Msgf(format, v...)
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debug().Msgf(format, v...)
}
