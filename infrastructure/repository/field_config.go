package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/database/postgres"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
)

const fieldConfigsTable = "field_configs"

// ErrFieldNotFound signals an update or delete against a missing field config.
var ErrFieldNotFound = errors.New("field config not found")

type FieldConfigRepository interface {
	ListFields() ([]*domain.FieldConfig, error)
	GetFieldByID(fieldID string) (*domain.FieldConfig, error)
	GetFieldByName(fieldName string) (*domain.FieldConfig, error)
	CreateField(field *domain.FieldConfig) error
	UpdateField(field *domain.FieldConfig) error
	UpdateDisplayOrder(fieldID string, displayOrder int) error
	DeleteField(fieldID string) error
}

type fieldConfigRepository struct {
	conn *postgres.Connection
}

func NewFieldConfigRepository(conn *postgres.Connection) FieldConfigRepository {
	return &fieldConfigRepository{
		conn: conn,
	}
}

// ListFields returns every field config ordered by display order. Ties break
// on creation time so reorder swaps stay deterministic.
func (r *fieldConfigRepository) ListFields() ([]*domain.FieldConfig, error) {
	query, args, err := squirrel.
		Select("id", "field_name", "field_type", "options", "required", "display_order", "is_default", "created_at", "updated_at").
		From(fieldConfigsTable).
		OrderBy("display_order ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list field configs: %w", err)
	}
	defer rows.Close()

	fields := make([]*domain.FieldConfig, 0)
	for rows.Next() {
		field, err := scanFieldConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan field config: %w", err)
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating field configs: %w", err)
	}

	return fields, nil
}

func (r *fieldConfigRepository) GetFieldByID(fieldID string) (*domain.FieldConfig, error) {
	return r.getField(squirrel.Eq{"id": fieldID})
}

func (r *fieldConfigRepository) GetFieldByName(fieldName string) (*domain.FieldConfig, error) {
	return r.getField(squirrel.Eq{"field_name": fieldName})
}

func (r *fieldConfigRepository) getField(whereClause squirrel.Eq) (*domain.FieldConfig, error) {
	query, args, err := squirrel.
		Select("id", "field_name", "field_type", "options", "required", "display_order", "is_default", "created_at", "updated_at").
		From(fieldConfigsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	field := &domain.FieldConfig{}
	var options pq.StringArray
	if err := row.Scan(
		&field.ID,
		&field.FieldName,
		&field.FieldType,
		&options,
		&field.Required,
		&field.DisplayOrder,
		&field.IsDefault,
		&field.CreatedAt,
		&field.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan field config: %w", err)
	}

	field.Options = options
	return field, nil
}

func (r *fieldConfigRepository) CreateField(field *domain.FieldConfig) error {
	query, args, err := squirrel.
		Insert(fieldConfigsTable).
		Columns("id", "field_name", "field_type", "options", "required", "display_order", "is_default").
		Values(
			field.ID,
			field.FieldName,
			field.FieldType,
			pq.Array(field.Options),
			field.Required,
			field.DisplayOrder,
			field.IsDefault,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&field.CreatedAt, &field.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to create field config: %w", err)
	}

	return nil
}

func (r *fieldConfigRepository) UpdateField(field *domain.FieldConfig) error {
	query, args, err := squirrel.
		Update(fieldConfigsTable).
		Set("field_name", field.FieldName).
		Set("field_type", field.FieldType).
		Set("options", pq.Array(field.Options)).
		Set("required", field.Required).
		Set("display_order", field.DisplayOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": field.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update field config: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func (r *fieldConfigRepository) UpdateDisplayOrder(fieldID string, displayOrder int) error {
	query, args, err := squirrel.
		Update(fieldConfigsTable).
		Set("display_order", displayOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": fieldID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update display order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func (r *fieldConfigRepository) DeleteField(fieldID string) error {
	query, args, err := squirrel.
		Delete(fieldConfigsTable).
		Where(squirrel.Eq{"id": fieldID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete field config: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func scanFieldConfig(rows *sql.Rows) (*domain.FieldConfig, error) {
	field := &domain.FieldConfig{}
	var options pq.StringArray

	if err := rows.Scan(
		&field.ID,
		&field.FieldName,
		&field.FieldType,
		&options,
		&field.Required,
		&field.DisplayOrder,
		&field.IsDefault,
		&field.CreatedAt,
		&field.UpdatedAt,
	); err != nil {
		return nil, err
	}

	field.Options = options
	return field, nil
}
