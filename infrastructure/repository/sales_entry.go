package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/database/postgres"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
)

const salesEntriesTable = "sales_entries se"

// ErrEntryNotFound signals an update or delete against a missing sales entry.
var ErrEntryNotFound = errors.New("sales entry not found")

// renameAttributeSQL moves the value stored under one attribute key to
// another key across every entry that carries the old key, as a single
// statement. Entries without the old key are untouched, which also makes
// the operation idempotent.
const renameAttributeSQL = `
	UPDATE sales_entries
	SET attributes = (attributes - $1::text) || jsonb_build_object($2::text, attributes -> $1::text),
	    updated_at = NOW()
	WHERE jsonb_exists(attributes, $1::text)`

// statsSQL aggregates quantity*price over the whole store. Entries missing
// either key get a NULL total, so they count toward the entry total but are
// skipped by SUM and AVG; the average is over sellable entries only.
const statsSQL = `
	SELECT COALESCE(SUM(t.total), 0), COUNT(*), COALESCE(AVG(t.total), 0)
	FROM (
		SELECT CASE
			WHEN jsonb_exists(se.attributes, 'quantity') AND jsonb_exists(se.attributes, 'price')
			THEN (se.attributes ->> 'quantity')::numeric * (se.attributes ->> 'price')::numeric
		END AS total
		FROM sales_entries se
	) t`

type SalesEntryRepository interface {
	CreateEntry(entry *domain.SalesEntry) error
	GetEntryByID(entryID string) (*domain.SalesEntry, error)
	ListEntries(filter domain.EntryFilter) ([]*domain.SalesEntry, error)
	UpdateEntry(entry *domain.SalesEntry) error
	DeleteEntry(entryID string) error
	RenameAttribute(oldKey, newKey string) (int64, error)
	Stats() (*domain.SalesStats, error)
}

type salesEntryRepository struct {
	conn *postgres.Connection
}

func NewSalesEntryRepository(conn *postgres.Connection) SalesEntryRepository {
	return &salesEntryRepository{
		conn: conn,
	}
}

func (r *salesEntryRepository) CreateEntry(entry *domain.SalesEntry) error {
	attributesJSON, err := json.Marshal(entry.Attributes)
	if err != nil {
		return fmt.Errorf("failed to serialize attributes: %w", err)
	}

	query, args, err := squirrel.
		Insert("sales_entries").
		Columns("id", "date", "entered_by", "attributes").
		Values(entry.ID, entry.Date, entry.EnteredBy, attributesJSON).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to create sales entry: %w", err)
	}

	return nil
}

func (r *salesEntryRepository) GetEntryByID(entryID string) (*domain.SalesEntry, error) {
	query, args, err := squirrel.
		Select("se.id", "se.date", "se.entered_by", "u.username", "se.attributes", "se.created_at", "se.updated_at").
		From(salesEntriesTable).
		Join("users u ON u.id = se.entered_by").
		Where(squirrel.Eq{"se.id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.SalesEntry{}
	var attributesJSON []byte
	if err := row.Scan(
		&entry.ID,
		&entry.Date,
		&entry.EnteredBy,
		&entry.EnteredByName,
		&attributesJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan sales entry: %w", err)
	}

	if err := json.Unmarshal(attributesJSON, &entry.Attributes); err != nil {
		return nil, fmt.Errorf("failed to deserialize attributes: %w", err)
	}

	return entry, nil
}

// ListEntries returns entries sorted by date descending, then creation time
// descending. Both filter bounds are inclusive when present.
func (r *salesEntryRepository) ListEntries(filter domain.EntryFilter) ([]*domain.SalesEntry, error) {
	queryBuilder := squirrel.
		Select("se.id", "se.date", "se.entered_by", "u.username", "se.attributes", "se.created_at", "se.updated_at").
		From(salesEntriesTable).
		Join("users u ON u.id = se.entered_by").
		OrderBy("se.date DESC", "se.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"se.date": *filter.StartDate})
	}

	if filter.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"se.date": *filter.EndDate})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SalesEntry, 0)
	for rows.Next() {
		entry := &domain.SalesEntry{}
		var attributesJSON []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.EnteredBy,
			&entry.EnteredByName,
			&attributesJSON,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sales entry: %w", err)
		}

		if err := json.Unmarshal(attributesJSON, &entry.Attributes); err != nil {
			return nil, fmt.Errorf("failed to deserialize attributes: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales entries: %w", err)
	}

	return entries, nil
}

func (r *salesEntryRepository) UpdateEntry(entry *domain.SalesEntry) error {
	attributesJSON, err := json.Marshal(entry.Attributes)
	if err != nil {
		return fmt.Errorf("failed to serialize attributes: %w", err)
	}

	query, args, err := squirrel.
		Update("sales_entries").
		Set("date", entry.Date).
		Set("attributes", attributesJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sales entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *salesEntryRepository) DeleteEntry(entryID string) error {
	query, args, err := squirrel.
		Delete("sales_entries").
		Where(squirrel.Eq{"id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete sales entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// RenameAttribute migrates the old key to the new key across all entries and
// returns how many entries were rewritten.
func (r *salesEntryRepository) RenameAttribute(oldKey, newKey string) (int64, error) {
	result, err := r.conn.Exec(renameAttributeSQL, oldKey, newKey)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("failed to rename attribute: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *salesEntryRepository) Stats() (*domain.SalesStats, error) {
	stats := &domain.SalesStats{}

	err := r.conn.QueryRow(statsSQL).Scan(&stats.TotalSales, &stats.TotalEntries, &stats.AvgSale)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sales stats: %w", err)
	}

	return stats, nil
}
