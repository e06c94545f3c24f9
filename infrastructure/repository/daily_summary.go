package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/database/postgres"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
)

const dailySummariesTable = "daily_summaries"

type DailySummaryRepository interface {
	SaveOrUpdate(summary *domain.DailySummary) error
	GetByDate(date time.Time) (*domain.DailySummary, error)
}

type dailySummaryRepository struct {
	conn *postgres.Connection
}

func NewDailySummaryRepository(conn *postgres.Connection) DailySummaryRepository {
	return &dailySummaryRepository{
		conn: conn,
	}
}

func (r *dailySummaryRepository) SaveOrUpdate(summary *domain.DailySummary) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(dailySummariesTable).
		Columns("id", "date", "total_sales", "total_entries", "avg_sale").
		Values(
			summary.ID,
			summary.Date.Format(time.DateOnly),
			summary.TotalSales,
			summary.TotalEntries,
			summary.AvgSale,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_entries = EXCLUDED.total_entries,
				avg_sale = EXCLUDED.avg_sale,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to save daily summary: %w", err)
	}

	return nil
}

func (r *dailySummaryRepository) GetByDate(date time.Time) (*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select("id", "date", "total_sales", "total_entries", "avg_sale", "updated_at").
		From(dailySummariesTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	summary := &domain.DailySummary{}
	err = r.conn.QueryRow(query, args...).Scan(
		&summary.ID,
		&summary.Date,
		&summary.TotalSales,
		&summary.TotalEntries,
		&summary.AvgSale,
		&summary.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan daily summary: %w", err)
	}

	return summary, nil
}
