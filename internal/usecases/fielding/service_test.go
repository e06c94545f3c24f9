package fielding

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository/mocks"
	"github.com/uniquebrothers/sales-entry-api/internal/config"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, enforceUniqueNames bool) (*service, *mocks.MockFieldConfigRepository, *mocks.MockSalesEntryRepository) {
	ctrl := gomock.NewController(t)

	fieldRepo := mocks.NewMockFieldConfigRepository(ctrl)
	entryRepo := mocks.NewMockSalesEntryRepository(ctrl)

	svc := &service{
		fieldRepo: fieldRepo,
		entryRepo: entryRepo,
		cfg: &config.Config{
			Fields: config.Fields{EnforceUniqueNames: enforceUniqueNames},
		},
	}

	return svc, fieldRepo, entryRepo
}

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

func TestService_CreateField(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateFieldRequest
		setup    func(fieldRepo *mocks.MockFieldConfigRepository)
		wantErr  error
		validate func(t *testing.T, field *domain.FieldConfig)
	}{
		{
			name: "text field defaults required to true",
			req: &domain.CreateFieldRequest{
				FieldName:    "supplierName",
				FieldType:    domain.FieldTypeText,
				DisplayOrder: 5,
			},
			setup: func(fieldRepo *mocks.MockFieldConfigRepository) {
				fieldRepo.EXPECT().
					CreateField(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, field *domain.FieldConfig) {
				assert.Equal(t, "supplierName", field.FieldName)
				assert.Equal(t, domain.FieldTypeText, field.FieldType)
				assert.True(t, field.Required)
				assert.Equal(t, 5, field.DisplayOrder)
				assert.NotEmpty(t, field.ID)
			},
		},
		{
			name: "explicit required false is honored",
			req: &domain.CreateFieldRequest{
				FieldName: "notes",
				FieldType: domain.FieldTypeText,
				Required:  boolPtr(false),
			},
			setup: func(fieldRepo *mocks.MockFieldConfigRepository) {
				fieldRepo.EXPECT().
					CreateField(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, field *domain.FieldConfig) {
				assert.False(t, field.Required)
			},
		},
		{
			name: "options dropped for non-select types",
			req: &domain.CreateFieldRequest{
				FieldName: "discount",
				FieldType: domain.FieldTypeNumber,
				Options:   []string{"ignored"},
			},
			setup: func(fieldRepo *mocks.MockFieldConfigRepository) {
				fieldRepo.EXPECT().
					CreateField(gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, field *domain.FieldConfig) {
				assert.Nil(t, field.Options)
			},
		},
		{
			name: "missing field name",
			req: &domain.CreateFieldRequest{
				FieldType: domain.FieldTypeText,
			},
			wantErr: ErrMissingFieldName,
		},
		{
			name: "invalid field type",
			req: &domain.CreateFieldRequest{
				FieldName: "color",
				FieldType: "dropdown",
			},
			wantErr: ErrInvalidFieldType,
		},
		{
			name: "select without options",
			req: &domain.CreateFieldRequest{
				FieldName: "size",
				FieldType: domain.FieldTypeSelect,
			},
			wantErr: ErrMissingOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fieldRepo, _ := newTestService(t, false)
			if tt.setup != nil {
				tt.setup(fieldRepo)
			}

			field, err := svc.CreateField(tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.validate(t, field)
		})
	}
}

func TestService_CreateField_DuplicateName(t *testing.T) {
	existing := &domain.FieldConfig{ID: "abc123", FieldName: "productName"}

	t.Run("rejected when enforcement is on", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, true)

		fieldRepo.EXPECT().
			GetFieldByName("productName").
			Return(existing, nil)

		_, err := svc.CreateField(&domain.CreateFieldRequest{
			FieldName: "productName",
			FieldType: domain.FieldTypeText,
		})
		assert.ErrorIs(t, err, ErrDuplicateFieldName)
	})

	t.Run("allowed when enforcement is off", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().
			CreateField(gomock.Any()).
			Return(nil)

		_, err := svc.CreateField(&domain.CreateFieldRequest{
			FieldName: "productName",
			FieldType: domain.FieldTypeText,
		})
		assert.NoError(t, err)
	})
}

func TestService_UpdateField_RenamePropagation(t *testing.T) {
	t.Run("rename migrates entries and reports the count", func(t *testing.T) {
		svc, fieldRepo, entryRepo := newTestService(t, false)

		fieldRepo.EXPECT().
			GetFieldByID("fld001").
			Return(&domain.FieldConfig{
				ID:        "fld001",
				FieldName: "customerName",
				FieldType: domain.FieldTypeText,
			}, nil)

		fieldRepo.EXPECT().
			UpdateField(gomock.Any()).
			DoAndReturn(func(field *domain.FieldConfig) error {
				assert.Equal(t, "clientName", field.FieldName)
				return nil
			})

		entryRepo.EXPECT().
			RenameAttribute("customerName", "clientName").
			Return(int64(3), nil)

		field, migrated, err := svc.UpdateField(&domain.UpdateFieldRequest{
			ID:        "fld001",
			FieldName: stringPtr("clientName"),
		})

		require.NoError(t, err)
		assert.Equal(t, "clientName", field.FieldName)
		assert.Equal(t, int64(3), migrated)
	})

	t.Run("unchanged name skips migration", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().
			GetFieldByID("fld001").
			Return(&domain.FieldConfig{
				ID:        "fld001",
				FieldName: "customerName",
				FieldType: domain.FieldTypeText,
			}, nil)

		fieldRepo.EXPECT().
			UpdateField(gomock.Any()).
			Return(nil)

		_, migrated, err := svc.UpdateField(&domain.UpdateFieldRequest{
			ID:       "fld001",
			Required: boolPtr(false),
		})

		require.NoError(t, err)
		assert.Zero(t, migrated)
	})

	t.Run("migration failure reaches the caller", func(t *testing.T) {
		svc, fieldRepo, entryRepo := newTestService(t, false)

		fieldRepo.EXPECT().
			GetFieldByID("fld001").
			Return(&domain.FieldConfig{
				ID:        "fld001",
				FieldName: "customerName",
				FieldType: domain.FieldTypeText,
			}, nil)

		fieldRepo.EXPECT().
			UpdateField(gomock.Any()).
			Return(nil)

		entryRepo.EXPECT().
			RenameAttribute("customerName", "clientName").
			Return(int64(0), errors.New("connection reset"))

		_, _, err := svc.UpdateField(&domain.UpdateFieldRequest{
			ID:        "fld001",
			FieldName: stringPtr("clientName"),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry migration failed")
	})

	t.Run("missing field", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().
			GetFieldByID("nope").
			Return(nil, nil)

		_, _, err := svc.UpdateField(&domain.UpdateFieldRequest{ID: "nope"})
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}

func TestService_DeleteField(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().
			DeleteField("fld001").
			Return(nil)

		assert.NoError(t, svc.DeleteField("fld001"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().
			DeleteField("nope").
			Return(repository.ErrFieldNotFound)

		assert.ErrorIs(t, svc.DeleteField("nope"), ErrFieldNotFound)
	})
}

func TestService_MoveField(t *testing.T) {
	fields := func() []*domain.FieldConfig {
		return []*domain.FieldConfig{
			{ID: "fld0", FieldName: "productName", DisplayOrder: 0},
			{ID: "fld1", FieldName: "quantity", DisplayOrder: 1},
			{ID: "fld2", FieldName: "price", DisplayOrder: 2},
		}
	}

	t.Run("move down swaps display orders", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().ListFields().Return(fields(), nil)
		fieldRepo.EXPECT().UpdateDisplayOrder("fld0", 1).Return(nil)
		fieldRepo.EXPECT().UpdateDisplayOrder("fld1", 0).Return(nil)

		assert.NoError(t, svc.MoveField(0, domain.MoveDown))
	})

	t.Run("move up swaps with predecessor", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().ListFields().Return(fields(), nil)
		fieldRepo.EXPECT().UpdateDisplayOrder("fld2", 1).Return(nil)
		fieldRepo.EXPECT().UpdateDisplayOrder("fld1", 2).Return(nil)

		assert.NoError(t, svc.MoveField(2, domain.MoveUp))
	})

	t.Run("moving the first field up is a no-op", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().ListFields().Return(fields(), nil)

		assert.NoError(t, svc.MoveField(0, domain.MoveUp))
	})

	t.Run("moving the last field down is a no-op", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().ListFields().Return(fields(), nil)

		assert.NoError(t, svc.MoveField(2, domain.MoveDown))
	})

	t.Run("index out of range", func(t *testing.T) {
		svc, fieldRepo, _ := newTestService(t, false)

		fieldRepo.EXPECT().ListFields().Return(fields(), nil)

		assert.ErrorIs(t, svc.MoveField(7, domain.MoveDown), ErrInvalidPosition)
	})
}
