package catalog

import (
	"os"
	"path/filepath"
	"testing"

	stderrors "laundry-king/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_FiveItemsWithExpectedPrices(t *testing.T) {
	c := MustDefault()

	assert.Equal(t, 5, c.Len())

	shirt, ok := c.Lookup("shirt")
	require.True(t, ok)
	assert.Equal(t, "Shirt", shirt.Name)
	assert.Equal(t, 35, shirt.Price)

	jacket, ok := c.Lookup("jacket")
	require.True(t, ok)
	assert.Equal(t, 70, jacket.Price)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		wantErr string
	}{
		{
			name:    "empty set",
			items:   nil,
			wantErr: "at least one item",
		},
		{
			name:    "empty id",
			items:   []Item{{Name: "Shirt", Price: 35}},
			wantErr: "empty id",
		},
		{
			name:    "negative price",
			items:   []Item{{ID: "shirt", Name: "Shirt", Price: -1}},
			wantErr: "negative price",
		},
		{
			name: "duplicate id",
			items: []Item{
				{ID: "shirt", Name: "Shirt", Price: 35},
				{ID: "shirt", Name: "Other Shirt", Price: 40},
			},
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry_Valid(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0",
		"items": [
			{"id": "shirt", "name": "Shirt", "icon": "👔", "price": 35},
			{"id": "dress", "name": "Dress", "price": 80}
		]
	}`)

	c, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	dress, ok := c.Lookup("dress")
	require.True(t, ok)
	assert.Equal(t, 80, dress.Price)
}

func TestLoadRegistry_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing version", content: `{"items": [{"id": "a", "name": "A", "price": 1}]}`},
		{name: "no items", content: `{"version": "1.0", "items": []}`},
		{name: "negative price", content: `{"version": "1.0", "items": [{"id": "a", "name": "A", "price": -5}]}`},
		{name: "extra field", content: `{"version": "1.0", "items": [{"id": "a", "name": "A", "price": 1, "color": "red"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRegistry(t, tt.content)
			_, err := LoadRegistry(path)
			require.Error(t, err)

			stdErr, ok := err.(*stderrors.StandardError)
			require.True(t, ok, "expected StandardError, got %T", err)
			assert.Equal(t, stderrors.ErrCodeRegistryInvalid, stdErr.Code)
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
