package recording

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository/mocks"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*service, *mocks.MockSalesEntryRepository, *mocks.MockFieldConfigRepository) {
	ctrl := gomock.NewController(t)

	entryRepo := mocks.NewMockSalesEntryRepository(ctrl)
	fieldRepo := mocks.NewMockFieldConfigRepository(ctrl)

	svc := &service{
		entryRepo: entryRepo,
		fieldRepo: fieldRepo,
	}

	return svc, entryRepo, fieldRepo
}

func ownerClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserUsername: "admin1", UserRole: domain.RoleOwner}
}

func employeeClaims() *domain.Claims {
	return &domain.Claims{UserID: 2, UserUsername: "staff1", UserRole: domain.RoleEmployee}
}

func defaultFieldConfigs() []*domain.FieldConfig {
	return []*domain.FieldConfig{
		{ID: "fld0", FieldName: "productName", FieldType: domain.FieldTypeText, Required: true},
		{ID: "fld1", FieldName: "quantity", FieldType: domain.FieldTypeNumber, Required: true},
		{ID: "fld2", FieldName: "price", FieldType: domain.FieldTypeNumber, Required: true},
		{ID: "fld3", FieldName: "customerName", FieldType: domain.FieldTypeText, Required: false},
		{ID: "fld4", FieldName: "paymentMethod", FieldType: domain.FieldTypeSelect, Required: true,
			Options: []string{"Cash", "Card", "UPI", "Net Banking", "Other"}},
	}
}

func validAttributes() map[string]any {
	return map[string]any{
		"productName":   "Sunglasses",
		"quantity":      float64(2),
		"price":         float64(100),
		"paymentMethod": "Cash",
	}
}

func TestService_CreateEntry(t *testing.T) {
	t.Run("computes total amount and attributes the actor", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)
		entryRepo.EXPECT().
			CreateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.NotEmpty(t, entry.ID)
				assert.Equal(t, 1, entry.EnteredBy)
				assert.Equal(t, utils.Today(), entry.Date)
				return nil
			})

		entry, err := svc.CreateEntry(ownerClaims(), &domain.CreateEntryRequest{
			Attributes: validAttributes(),
		})

		require.NoError(t, err)
		require.NotNil(t, entry.TotalAmount)
		assert.Equal(t, 200.0, *entry.TotalAmount)
	})

	t.Run("owner can backdate", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		lastWeek := utils.Today().AddDate(0, 0, -7)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)
		entryRepo.EXPECT().
			CreateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.Equal(t, lastWeek, entry.Date)
				return nil
			})

		_, err := svc.CreateEntry(ownerClaims(), &domain.CreateEntryRequest{
			Date:       &lastWeek,
			Attributes: validAttributes(),
		})
		assert.NoError(t, err)
	})

	t.Run("employee cannot backdate", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		yesterday := utils.Today().AddDate(0, 0, -1)

		_, err := svc.CreateEntry(employeeClaims(), &domain.CreateEntryRequest{
			Date:       &yesterday,
			Attributes: validAttributes(),
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	validationTests := []struct {
		name   string
		mutate func(attrs map[string]any)
	}{
		{
			name:   "missing required field",
			mutate: func(attrs map[string]any) { delete(attrs, "productName") },
		},
		{
			name:   "zero quantity",
			mutate: func(attrs map[string]any) { attrs["quantity"] = float64(0) },
		},
		{
			name:   "negative price",
			mutate: func(attrs map[string]any) { attrs["price"] = float64(-10) },
		},
		{
			name:   "non-numeric quantity",
			mutate: func(attrs map[string]any) { attrs["quantity"] = "two" },
		},
		{
			name:   "unknown select option",
			mutate: func(attrs map[string]any) { attrs["paymentMethod"] = "Barter" },
		},
	}

	for _, tt := range validationTests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, fieldRepo := newTestService(t)

			fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)

			attrs := validAttributes()
			tt.mutate(attrs)

			_, err := svc.CreateEntry(ownerClaims(), &domain.CreateEntryRequest{Attributes: attrs})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	t.Run("keys without a field config pass through", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)
		entryRepo.EXPECT().
			CreateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.Equal(t, "legacy value", entry.Attributes["oldField"])
				return nil
			})

		attrs := validAttributes()
		attrs["oldField"] = "legacy value"

		_, err := svc.CreateEntry(ownerClaims(), &domain.CreateEntryRequest{Attributes: attrs})
		assert.NoError(t, err)
	})
}

func TestService_ListEntries(t *testing.T) {
	t.Run("employee gets an empty list regardless of filters", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		start := utils.Today().AddDate(0, 0, -30)
		entries, err := svc.ListEntries(employeeClaims(), domain.EntryFilter{StartDate: &start})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("owner gets entries with computed totals", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			ListEntries(gomock.Any()).
			Return([]*domain.SalesEntry{
				{ID: "ent001", Attributes: map[string]any{"quantity": float64(2), "price": float64(100)}},
				{ID: "ent002", Attributes: map[string]any{"productName": "Frame"}},
			}, nil)

		entries, err := svc.ListEntries(ownerClaims(), domain.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		require.NotNil(t, entries[0].TotalAmount)
		assert.Equal(t, 200.0, *entries[0].TotalAmount)
		assert.Nil(t, entries[1].TotalAmount)
	})
}

func TestService_UpdateEntry(t *testing.T) {
	t.Run("revalidates attributes and updates", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		entryRepo.EXPECT().
			GetEntryByID("ent001").
			Return(&domain.SalesEntry{
				ID:         "ent001",
				Date:       utils.Today(),
				Attributes: validAttributes(),
			}, nil)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)

		entryRepo.EXPECT().
			UpdateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.Equal(t, float64(3), entry.Attributes["quantity"])
				return nil
			})

		attrs := validAttributes()
		attrs["quantity"] = float64(3)

		entry, err := svc.UpdateEntry(&domain.UpdateEntryRequest{ID: "ent001", Attributes: attrs})

		require.NoError(t, err)
		require.NotNil(t, entry.TotalAmount)
		assert.Equal(t, 300.0, *entry.TotalAmount)
	})

	t.Run("partial payload keeps stored attributes", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		entryRepo.EXPECT().
			GetEntryByID("ent001").
			Return(&domain.SalesEntry{
				ID:         "ent001",
				Date:       utils.Today(),
				Attributes: validAttributes(),
			}, nil)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)

		entryRepo.EXPECT().
			UpdateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.Equal(t, float64(5), entry.Attributes["quantity"])
				assert.Equal(t, "Sunglasses", entry.Attributes["productName"])
				assert.Equal(t, float64(100), entry.Attributes["price"])
				assert.Equal(t, "Cash", entry.Attributes["paymentMethod"])
				return nil
			})

		// Only quantity is sent; the required fields already stored must
		// satisfy validation and survive the update.
		entry, err := svc.UpdateEntry(&domain.UpdateEntryRequest{
			ID:         "ent001",
			Attributes: map[string]any{"quantity": float64(5)},
		})

		require.NoError(t, err)
		require.NotNil(t, entry.TotalAmount)
		assert.Equal(t, 500.0, *entry.TotalAmount)
	})

	t.Run("orphaned keys survive an update", func(t *testing.T) {
		svc, entryRepo, fieldRepo := newTestService(t)

		stored := validAttributes()
		stored["discountCode"] = "SUMMER24" // key left behind by a deleted field

		entryRepo.EXPECT().
			GetEntryByID("ent001").
			Return(&domain.SalesEntry{
				ID:         "ent001",
				Date:       utils.Today(),
				Attributes: stored,
			}, nil)

		fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)

		entryRepo.EXPECT().
			UpdateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.SalesEntry) error {
				assert.Equal(t, "SUMMER24", entry.Attributes["discountCode"])
				return nil
			})

		attrs := validAttributes()
		attrs["price"] = float64(90)

		_, err := svc.UpdateEntry(&domain.UpdateEntryRequest{ID: "ent001", Attributes: attrs})
		assert.NoError(t, err)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().GetEntryByID("nope").Return(nil, nil)

		_, err := svc.UpdateEntry(&domain.UpdateEntryRequest{ID: "nope"})
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestService_DeleteEntry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().DeleteEntry("ent001").Return(nil)

		assert.NoError(t, svc.DeleteEntry("ent001"))
	})

	t.Run("not found", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().DeleteEntry("nope").Return(repository.ErrEntryNotFound)

		assert.ErrorIs(t, svc.DeleteEntry("nope"), ErrEntryNotFound)
	})
}

func TestService_RenameKey(t *testing.T) {
	t.Run("delegates to the repository", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			RenameAttribute("customerName", "clientName").
			Return(int64(4), nil)

		migrated, err := svc.RenameKey("customerName", "clientName")

		require.NoError(t, err)
		assert.Equal(t, int64(4), migrated)
	})

	t.Run("same key is a no-op", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		migrated, err := svc.RenameKey("customerName", "customerName")

		require.NoError(t, err)
		assert.Zero(t, migrated)
	})

	t.Run("empty keys are rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RenameKey("", "clientName")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			RenameAttribute("a", "b").
			Return(int64(0), errors.New("connection reset"))

		_, err := svc.RenameKey("a", "b")
		assert.Error(t, err)
	})
}

func TestService_Stats(t *testing.T) {
	t.Run("passes aggregates through with rounding", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			Stats().
			Return(&domain.SalesStats{TotalSales: 250, TotalEntries: 2, AvgSale: 125}, nil)

		stats, err := svc.Stats()

		require.NoError(t, err)
		assert.Equal(t, 250.0, stats.TotalSales)
		assert.Equal(t, 2, stats.TotalEntries)
		assert.Equal(t, 125.0, stats.AvgSale)
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			Stats().
			Return(&domain.SalesStats{TotalSales: 100, TotalEntries: 3, AvgSale: 33.333333333}, nil)

		stats, err := svc.Stats()

		require.NoError(t, err)
		assert.Equal(t, 33.33, stats.AvgSale)
	})

	t.Run("empty store yields zeroes", func(t *testing.T) {
		svc, entryRepo, _ := newTestService(t)

		entryRepo.EXPECT().
			Stats().
			Return(&domain.SalesStats{}, nil)

		stats, err := svc.Stats()

		require.NoError(t, err)
		assert.Zero(t, stats.TotalSales)
		assert.Zero(t, stats.TotalEntries)
		assert.Zero(t, stats.AvgSale)
	})
}

func TestService_ExportDataset(t *testing.T) {
	svc, entryRepo, fieldRepo := newTestService(t)

	fieldRepo.EXPECT().ListFields().Return(defaultFieldConfigs(), nil)
	entryRepo.EXPECT().
		ListEntries(domain.EntryFilter{}).
		Return([]*domain.SalesEntry{
			{ID: "ent001", Date: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
				Attributes: map[string]any{"quantity": float64(1), "price": float64(50)}},
		}, nil)

	dataset, err := svc.ExportDataset()

	require.NoError(t, err)
	assert.Len(t, dataset.Fields, 5)
	require.Len(t, dataset.Entries, 1)
	require.NotNil(t, dataset.Entries[0].TotalAmount)
	assert.Equal(t, 50.0, *dataset.Entries[0].TotalAmount)
}
