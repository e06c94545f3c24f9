package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesEntry_ComputeTotalAmount(t *testing.T) {
	tests := []struct {
		name       string
		attributes map[string]any
		want       *float64
	}{
		{
			name:       "quantity times price",
			attributes: map[string]any{"quantity": float64(2), "price": float64(100)},
			want:       floatPtr(200),
		},
		{
			name:       "integer values coerce",
			attributes: map[string]any{"quantity": 3, "price": int64(50)},
			want:       floatPtr(150),
		},
		{
			name:       "missing price yields nil",
			attributes: map[string]any{"quantity": float64(2)},
			want:       nil,
		},
		{
			name:       "missing quantity yields nil",
			attributes: map[string]any{"price": float64(100)},
			want:       nil,
		},
		{
			name:       "non-numeric values yield nil",
			attributes: map[string]any{"quantity": "two", "price": float64(100)},
			want:       nil,
		},
		{
			name:       "empty attributes yield nil",
			attributes: map[string]any{},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &SalesEntry{Attributes: tt.attributes}
			entry.ComputeTotalAmount()

			if tt.want == nil {
				assert.Nil(t, entry.TotalAmount)
				return
			}

			require.NotNil(t, entry.TotalAmount)
			assert.Equal(t, *tt.want, *entry.TotalAmount)
		})
	}
}

func TestValidFieldType(t *testing.T) {
	assert.True(t, ValidFieldType(FieldTypeText))
	assert.True(t, ValidFieldType(FieldTypeNumber))
	assert.True(t, ValidFieldType(FieldTypeSelect))
	assert.True(t, ValidFieldType(FieldTypeDate))
	assert.False(t, ValidFieldType("dropdown"))
	assert.False(t, ValidFieldType(""))
}

func floatPtr(f float64) *float64 { return &f }
