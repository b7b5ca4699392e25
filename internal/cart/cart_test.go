package cart

import (
	"testing"

	"laundry-king/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Item{
		{ID: "shirt", Name: "Shirt", Price: 35},
		{ID: "tshirt", Name: "T-Shirt", Price: 25},
	})
	require.NoError(t, err)
	return c
}

func TestStore_AllKeysPresentFromConstruction(t *testing.T) {
	store := NewStore(testCatalog(t))

	counts := store.Counts()
	assert.Len(t, counts, 2)
	assert.Equal(t, 0, counts["shirt"])
	assert.Equal(t, 0, counts["tshirt"])
}

func TestStore_CountNeverNegative(t *testing.T) {
	tests := []struct {
		name string
		ops  []string // "+" increments, "-" decrements
		want int
	}{
		{name: "decrement at zero is a no-op", ops: []string{"-", "-"}, want: 0},
		{name: "net positive", ops: []string{"+", "+", "-"}, want: 1},
		{name: "clamped then recounted", ops: []string{"-", "+", "-", "-", "+"}, want: 1},
		{name: "no upper bound", ops: []string{"+", "+", "+", "+", "+", "+", "+", "+"}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(testCatalog(t))
			for _, op := range tt.ops {
				if op == "+" {
					store.Increment("shirt")
				} else {
					store.Decrement("shirt")
				}
			}
			assert.Equal(t, tt.want, store.Count("shirt"))
			assert.GreaterOrEqual(t, store.Count("shirt"), 0)
		})
	}
}

func TestStore_UnknownItemIsNoOp(t *testing.T) {
	store := NewStore(testCatalog(t))

	store.Increment("towel")
	store.Decrement("towel")

	assert.Len(t, store.Counts(), 2)
	assert.Equal(t, 0, store.Total())
}

func TestStore_TotalTracksEveryMutation(t *testing.T) {
	store := NewStore(testCatalog(t))
	assert.Equal(t, 0, store.Total())

	store.Increment("shirt")
	assert.Equal(t, 35, store.Total())

	store.Increment("shirt")
	store.Increment("tshirt")
	assert.Equal(t, 2*35+25, store.Total())

	store.Decrement("tshirt")
	assert.Equal(t, 70, store.Total())
}

func TestStore_ResetZeroesEverything(t *testing.T) {
	store := NewStore(testCatalog(t))
	store.Increment("shirt")
	store.Increment("shirt")
	store.Increment("tshirt")

	store.Reset()

	for id, count := range store.Counts() {
		assert.Equal(t, 0, count, "count for %s after reset", id)
	}
	assert.Equal(t, 0, store.Total())
}

func TestStore_CountsReturnsCopy(t *testing.T) {
	store := NewStore(testCatalog(t))
	counts := store.Counts()
	counts["shirt"] = 99

	assert.Equal(t, 0, store.Count("shirt"))
}
