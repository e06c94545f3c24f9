package recording

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/pkg/log"
	"github.com/uniquebrothers/sales-entry-api/pkg/utils"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrEntryNotFound = errors.New("sales entry not found")
	ErrForbidden     = errors.New("operation not allowed for this role")
)

type RecordService interface {
	CreateEntry(actor *domain.Claims, req *domain.CreateEntryRequest) (*domain.SalesEntry, error)
	ListEntries(actor *domain.Claims, filter domain.EntryFilter) ([]*domain.SalesEntry, error)
	UpdateEntry(req *domain.UpdateEntryRequest) (*domain.SalesEntry, error)
	DeleteEntry(entryID string) error
	RenameKey(oldKey, newKey string) (int64, error)
	Stats() (*domain.SalesStats, error)
	ExportDataset() (*domain.ExportDataset, error)
}

type service struct {
	entryRepo repository.SalesEntryRepository
	fieldRepo repository.FieldConfigRepository
}

func NewService(
	entryRepo repository.SalesEntryRepository,
	fieldRepo repository.FieldConfigRepository,
) RecordService {
	return &service{
		entryRepo: entryRepo,
		fieldRepo: fieldRepo,
	}
}

func (s *service) CreateEntry(actor *domain.Claims, req *domain.CreateEntryRequest) (*domain.SalesEntry, error) {
	date := utils.Today()
	if req.Date != nil {
		date = utils.TruncateToDay(*req.Date)
	}

	// Only owners may log entries for a day other than today.
	if !date.Equal(utils.Today()) && !actor.IsOwner() {
		return nil, errors.Wrap(ErrForbidden, "backdated entries require the owner role")
	}

	fields, err := s.fieldRepo.ListFields()
	if err != nil {
		return nil, err
	}

	attributes, err := validateAttributes(req.Attributes, fields)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate entry ID: %w", err)
	}

	entry := &domain.SalesEntry{
		ID:            id,
		Date:          date,
		EnteredBy:     actor.UserID,
		EnteredByName: actor.UserUsername,
		Attributes:    attributes,
	}

	if err := s.entryRepo.CreateEntry(entry); err != nil {
		return nil, err
	}

	entry.ComputeTotalAmount()
	return entry, nil
}

// ListEntries returns entries visible to the actor. Employees get an empty
// list no matter what filter they send; entry data is owner-only.
func (s *service) ListEntries(actor *domain.Claims, filter domain.EntryFilter) ([]*domain.SalesEntry, error) {
	if !actor.IsOwner() {
		return []*domain.SalesEntry{}, nil
	}

	entries, err := s.entryRepo.ListEntries(filter)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		entry.ComputeTotalAmount()
	}

	return entries, nil
}

func (s *service) UpdateEntry(req *domain.UpdateEntryRequest) (*domain.SalesEntry, error) {
	entry, err := s.entryRepo.GetEntryByID(req.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	if req.Date != nil {
		entry.Date = utils.TruncateToDay(*req.Date)
	}

	if req.Attributes != nil {
		fields, err := s.fieldRepo.ListFields()
		if err != nil {
			return nil, err
		}

		// Merge the payload over the stored map instead of replacing it.
		// Keys absent from the request survive the edit, including orphaned
		// keys left behind by renamed or deleted fields.
		merged := make(map[string]any, len(entry.Attributes)+len(req.Attributes))
		for key, value := range entry.Attributes {
			merged[key] = value
		}
		for key, value := range req.Attributes {
			merged[key] = value
		}

		attributes, err := validateAttributes(merged, fields)
		if err != nil {
			return nil, err
		}

		entry.Attributes = attributes
	}

	if err := s.entryRepo.UpdateEntry(entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	entry.ComputeTotalAmount()
	return entry, nil
}

func (s *service) DeleteEntry(entryID string) error {
	err := s.entryRepo.DeleteEntry(entryID)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

// RenameKey migrates an attribute key across every stored entry. Exposed for
// administrative repair; field renames trigger the same migration internally.
func (s *service) RenameKey(oldKey, newKey string) (int64, error) {
	if oldKey == "" || newKey == "" {
		return 0, errors.Wrap(ErrValidation, "both old and new key are required")
	}
	if oldKey == newKey {
		return 0, nil
	}

	migrated, err := s.entryRepo.RenameAttribute(oldKey, newKey)
	if err != nil {
		return 0, err
	}

	log.L.WithFields(log.Fields{
		"old_key":  oldKey,
		"new_key":  newKey,
		"migrated": migrated,
	}).Info("attribute key renamed across sales entries")

	return migrated, nil
}

func (s *service) Stats() (*domain.SalesStats, error) {
	stats, err := s.entryRepo.Stats()
	if err != nil {
		return nil, err
	}

	stats.TotalSales = utils.RoundWithTwoDecimalPlace(stats.TotalSales)
	stats.AvgSale = utils.RoundWithTwoDecimalPlace(stats.AvgSale)
	return stats, nil
}

func (s *service) ExportDataset() (*domain.ExportDataset, error) {
	fields, err := s.fieldRepo.ListFields()
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(domain.EntryFilter{})
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		entry.ComputeTotalAmount()
	}

	return &domain.ExportDataset{
		Fields:  fields,
		Entries: entries,
	}, nil
}

// validateAttributes checks the open map against the current field configs:
// required fields must be present, number fields must coerce, select fields
// must use a configured option. Keys without a matching config pass through
// untouched so records created under old configs stay writable.
func validateAttributes(attributes map[string]any, fields []*domain.FieldConfig) (map[string]any, error) {
	if attributes == nil {
		attributes = map[string]any{}
	}

	validated := make(map[string]any, len(attributes))
	for key, value := range attributes {
		validated[key] = value
	}

	for _, field := range fields {
		value, present := validated[field.FieldName]

		if !present || value == nil || value == "" {
			if field.Required {
				return nil, errors.Wrapf(ErrValidation, "field %q is required", field.FieldName)
			}
			continue
		}

		switch field.FieldType {
		case domain.FieldTypeNumber:
			number, err := coerceNumber(value)
			if err != nil {
				return nil, errors.Wrapf(ErrValidation, "field %q must be numeric", field.FieldName)
			}
			if err := checkLegacyBounds(field.FieldName, number); err != nil {
				return nil, err
			}
			validated[field.FieldName] = number
		case domain.FieldTypeSelect:
			str, ok := value.(string)
			if !ok || !containsOption(field.Options, str) {
				return nil, errors.Wrapf(ErrValidation, "field %q must be one of %v", field.FieldName, field.Options)
			}
		}
	}

	return validated, nil
}

// checkLegacyBounds keeps the historical constraints on the two default
// numeric fields: quantity starts at one, price cannot be negative.
func checkLegacyBounds(fieldName string, value float64) error {
	if fieldName == domain.AttrQuantity && value < 1 {
		return errors.Wrap(ErrValidation, "quantity must be at least 1")
	}
	if fieldName == domain.AttrPrice && value < 0 {
		return errors.Wrap(ErrValidation, "price cannot be negative")
	}
	return nil
}

func coerceNumber(value any) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("value %v is not numeric", value)
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
