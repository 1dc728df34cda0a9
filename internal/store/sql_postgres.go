package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection pool through the pgx
// database/sql driver.
func NewConnectPostgres(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, classifyError(err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:          conn,
		dialect:     "postgres",
		placeholder: sq.Dollar,
		logger:      log,
	}, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyError maps PostgreSQL error codes onto store sentinels. Errors
// from other drivers pass through unchanged.
//
// Class 08 (connection exceptions) and 57P03 map to ErrStoreUnavailable;
// 42P01 (undefined table) maps to ErrStoreNotMigrated.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	switch code := postgresError(err); {
	case code == "":
		return err
	case pgerrcode.IsConnectionException(code), code == pgerrcode.CannotConnectNow:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	case code == pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %v", ErrStoreNotMigrated, err)
	default:
		return err
	}
}
