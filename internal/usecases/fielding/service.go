package fielding

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/internal/config"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/pkg/log"
	"github.com/uniquebrothers/sales-entry-api/pkg/utils"
)

var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrInvalidFieldType   = errors.New("invalid field type")
	ErrMissingFieldName   = errors.New("field name is required")
	ErrMissingOptions     = errors.New("select fields require at least one option")
	ErrDuplicateFieldName = errors.New("a field with this name already exists")
	ErrInvalidPosition    = errors.New("field position out of range")
)

type FieldService interface {
	ListFields() ([]*domain.FieldConfig, error)
	CreateField(req *domain.CreateFieldRequest) (*domain.FieldConfig, error)
	UpdateField(req *domain.UpdateFieldRequest) (*domain.FieldConfig, int64, error)
	DeleteField(fieldID string) error
	MoveField(index int, direction domain.MoveDirection) error
}

type service struct {
	fieldRepo repository.FieldConfigRepository
	entryRepo repository.SalesEntryRepository
	cfg       *config.Config
}

func NewService(
	fieldRepo repository.FieldConfigRepository,
	entryRepo repository.SalesEntryRepository,
	cfg *config.Config,
) FieldService {
	return &service{
		fieldRepo: fieldRepo,
		entryRepo: entryRepo,
		cfg:       cfg,
	}
}

func (s *service) ListFields() ([]*domain.FieldConfig, error) {
	return s.fieldRepo.ListFields()
}

func (s *service) CreateField(req *domain.CreateFieldRequest) (*domain.FieldConfig, error) {
	if req.FieldName == "" {
		return nil, ErrMissingFieldName
	}

	if !domain.ValidFieldType(req.FieldType) {
		return nil, errors.Wrapf(ErrInvalidFieldType, "got %q", req.FieldType)
	}

	if req.FieldType == domain.FieldTypeSelect && len(req.Options) == 0 {
		return nil, ErrMissingOptions
	}

	if err := s.checkNameAvailable(req.FieldName); err != nil {
		return nil, err
	}

	// Required defaults to true when the caller leaves it out.
	required := true
	if req.Required != nil {
		required = *req.Required
	}

	options := req.Options
	if req.FieldType != domain.FieldTypeSelect {
		options = nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate field ID: %w", err)
	}

	field := &domain.FieldConfig{
		ID:           id,
		FieldName:    req.FieldName,
		FieldType:    req.FieldType,
		Options:      options,
		Required:     required,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.fieldRepo.CreateField(field); err != nil {
		return nil, err
	}

	return field, nil
}

// UpdateField applies the requested changes and, when the name changed, pushes
// the rename down to every stored entry. Returns the number of entries whose
// attribute key was migrated.
func (s *service) UpdateField(req *domain.UpdateFieldRequest) (*domain.FieldConfig, int64, error) {
	field, err := s.fieldRepo.GetFieldByID(req.ID)
	if err != nil {
		return nil, 0, err
	}
	if field == nil {
		return nil, 0, ErrFieldNotFound
	}

	oldName := field.FieldName

	if req.FieldName != nil && *req.FieldName != "" && *req.FieldName != oldName {
		if err := s.checkNameAvailable(*req.FieldName); err != nil {
			return nil, 0, err
		}
		field.FieldName = *req.FieldName
	}

	if req.FieldType != nil {
		if !domain.ValidFieldType(*req.FieldType) {
			return nil, 0, errors.Wrapf(ErrInvalidFieldType, "got %q", *req.FieldType)
		}
		field.FieldType = *req.FieldType
	}

	if req.Options != nil {
		field.Options = req.Options
	}

	if field.FieldType == domain.FieldTypeSelect && len(field.Options) == 0 {
		return nil, 0, ErrMissingOptions
	}
	if field.FieldType != domain.FieldTypeSelect {
		field.Options = nil
	}

	if req.Required != nil {
		field.Required = *req.Required
	}

	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	}

	if err := s.fieldRepo.UpdateField(field); err != nil {
		if errors.Is(err, repository.ErrFieldNotFound) {
			return nil, 0, ErrFieldNotFound
		}
		return nil, 0, err
	}

	// The definition is already renamed at this point, so a propagation
	// failure must reach the caller rather than be logged and dropped.
	var migrated int64
	if field.FieldName != oldName {
		migrated, err = s.entryRepo.RenameAttribute(oldName, field.FieldName)
		if err != nil {
			return nil, 0, fmt.Errorf("field renamed but entry migration failed: %w", err)
		}

		log.L.WithFields(log.Fields{
			"old_name": oldName,
			"new_name": field.FieldName,
			"migrated": migrated,
		}).Info("field rename propagated to sales entries")
	}

	return field, migrated, nil
}

// DeleteField removes the definition only. Entries keep whatever values they
// already stored under the field's name.
func (s *service) DeleteField(fieldID string) error {
	err := s.fieldRepo.DeleteField(fieldID)
	if errors.Is(err, repository.ErrFieldNotFound) {
		return ErrFieldNotFound
	}
	return err
}

// MoveField swaps the display order of the field at the given position with
// its neighbor in the given direction. Moving past either end is a no-op.
func (s *service) MoveField(index int, direction domain.MoveDirection) error {
	fields, err := s.fieldRepo.ListFields()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(fields) {
		return ErrInvalidPosition
	}

	neighbor := index - 1
	if direction == domain.MoveDown {
		neighbor = index + 1
	}

	if neighbor < 0 || neighbor >= len(fields) {
		return nil
	}

	current, other := fields[index], fields[neighbor]

	if err := s.fieldRepo.UpdateDisplayOrder(current.ID, other.DisplayOrder); err != nil {
		return fmt.Errorf("failed to move field %s: %w", current.ID, err)
	}

	if err := s.fieldRepo.UpdateDisplayOrder(other.ID, current.DisplayOrder); err != nil {
		return fmt.Errorf("failed to move field %s: %w", other.ID, err)
	}

	return nil
}

// checkNameAvailable is a no-op unless uniqueness enforcement is turned on.
func (s *service) checkNameAvailable(name string) error {
	if !s.cfg.Fields.EnforceUniqueNames {
		return nil
	}

	existing, err := s.fieldRepo.GetFieldByName(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.Wrapf(ErrDuplicateFieldName, "name %q", name)
	}

	return nil
}
