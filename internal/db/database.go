package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/types"
	"github.com/yungbote/linguadex-backend/internal/utils"
)

// DatabaseService owns the gorm handle. DB_DRIVER selects the backend:
// "sqlite" (default, file database for local development) or "postgres".
type DatabaseService struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	log.Info("Loading environment variables...")
	driver := utils.GetEnv("DB_DRIVER", "sqlite", log)

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "postgres":
		postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
		postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
		postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		postgresName := utils.GetEnv("POSTGRES_NAME", "linguadex", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

		log.Info("Connecting to Postgres...")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err != nil {
			log.Error("Failed to connect to Postgres", "error", err)
			return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
		}
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			log.Error("Failed to enable uuid-ossp extension", "error", err)
			return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
		}
		log.Info("uuid-ossp extension enabled")
	case "sqlite":
		path := utils.GetEnv("SQLITE_PATH", "language_learning.db", log)
		log.Info("Opening SQLite database...", "path", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Error("Failed to open SQLite database", "error", err)
			return nil, fmt.Errorf("Failed to open SQLite database: %w", err)
		}
	default:
		return nil, fmt.Errorf("Unknown DB_DRIVER %q", driver)
	}

	return &DatabaseService{db: db, driver: driver, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Vocabulary{},
		&types.UserVocabulary{},
		&types.Conversation{},
		&types.Message{},
		&types.ProgressRecord{},
		&types.LLMCallLog{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}

func (s *DatabaseService) Driver() string {
	return s.driver
}
