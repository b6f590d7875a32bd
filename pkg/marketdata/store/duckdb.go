// Package store persists downloaded daily bars in a local DuckDB database
// and serves them back as a history provider. This is collaborator-level
// caching of upstream fetches; the analysis core itself persists nothing.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-insight/internal/logger"
	"github.com/rxtech-lab/argo-insight/internal/types"
	"github.com/rxtech-lab/argo-insight/pkg/errors"
	"go.uber.org/zap"
)

// Store is a DuckDB-backed daily bar store.
type Store struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewStore opens (or creates) a DuckDB database at the given path. Use
// ":memory:" for an ephemeral store.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, "failed to open duckdb database", err)
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	store := &Store{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := store.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	return store, nil
}

func (s *Store) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_bars (
			id TEXT,
			ticker TEXT,
			time TIMESTAMP,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, "failed to create daily_bars table", err)
	}

	return nil
}

// WriteBars inserts the given bars in one transaction.
func (s *Store) WriteBars(bars types.PriceSeries) error {
	if len(bars) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to begin transaction", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO daily_bars (id, ticker, time, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to prepare insert", err)
	}

	for _, bar := range bars {
		_, err := stmt.Exec(
			uuid.New().String(),
			bar.Ticker,
			bar.Time,
			bar.Open,
			bar.High,
			bar.Low,
			bar.Close,
			bar.Volume,
		)
		if err != nil {
			stmt.Close()
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to insert bar", err)
		}
	}

	stmt.Close()

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWriteFailed, "failed to commit transaction", err)
	}

	s.logger.Debug("wrote bars", zap.Int("count", len(bars)))

	return nil
}

// GetDailyHistory implements provider.HistoryProvider, reading previously
// stored bars ordered by trading date.
func (s *Store) GetDailyHistory(ctx context.Context, ticker string, start, end time.Time) (types.PriceSeries, error) {
	query, args, err := s.sq.
		Select("ticker", "time", "open", "high", "low", "close", "volume").
		From("daily_bars").
		Where(squirrel.Eq{"ticker": ticker}).
		Where(squirrel.GtOrEq{"time": start}).
		Where(squirrel.LtOrEq{"time": end}).
		OrderBy("time ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query daily bars", err)
	}
	defer rows.Close()

	var series types.PriceSeries

	for rows.Next() {
		var bar types.MarketData

		err := rows.Scan(&bar.Ticker, &bar.Time, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan bar", err)
		}

		series = append(series, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "row iteration failed", err)
	}

	return series, nil
}

// Count returns the number of stored bars for a ticker.
func (s *Store) Count(ticker string) (int, error) {
	query, args, err := s.sq.
		Select("COUNT(*)").
		From("daily_bars").
		Where(squirrel.Eq{"ticker": ticker}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := s.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count bars", err)
	}

	return count, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
