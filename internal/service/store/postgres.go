package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// NewPostgresStore opens a PostgreSQL-backed store and ensures its schema.
func NewPostgresStore(cfg PostgresConfig, logger *zap.Logger) (Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(constants.StoreConfig.MaxOpenConns)
	db.SetMaxIdleConns(constants.StoreConfig.MaxIdleConns)
	db.SetConnMaxLifetime(constants.StoreConfig.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), constants.StoreConfig.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	s := &sqlStore{db: db, placeholders: true, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)
	return s, nil
}
