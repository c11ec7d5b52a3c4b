package entity

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddRemove(t *testing.T) {
	tests := []struct {
		name string
		ops  []string
		key  string
		want int
	}{
		{name: "untouched key reads zero", key: "3", want: 0},
		{name: "add add remove", ops: []string{"+", "+", "-"}, key: "7", want: 1},
		{name: "remove beyond adds clamps at zero", ops: []string{"+", "-", "-", "-"}, key: "7", want: 0},
		{name: "remove on empty stays zero", ops: []string{"-"}, key: "9", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := Cart{}
			for _, op := range tt.ops {
				if op == "+" {
					cart.Add(tt.key)
				} else {
					cart.Remove(tt.key)
				}
			}

			assert.Equal(t, tt.want, cart.Quantity(tt.key))
		})
	}
}

func TestCart_WithSeededZeros(t *testing.T) {
	cart := Cart{"7": 2, "150": 1}

	out := cart.WithSeededZeros(100)

	assert.Len(t, out, 101)
	assert.Equal(t, 0, out["0"])
	assert.Equal(t, 0, out["99"])
	assert.Equal(t, 2, out["7"])
	assert.Equal(t, 1, out["150"])
	assert.Len(t, cart, 2, "source cart must not be modified")
}

func TestCart_Clone(t *testing.T) {
	cart := Cart{"1": 1}
	clone := cart.Clone()
	clone.Add("1")

	assert.Equal(t, 1, cart.Quantity("1"))
	assert.Equal(t, 2, clone.Quantity("1"))
}

// Two writers that each copy the cart, add, and write the copy back lose one of the increments.
func TestCart_SnapshotReadModifyWriteLosesUpdate(t *testing.T) {
	stored := Cart{}

	first := stored.Clone()
	second := stored.Clone()

	first.Add("5")
	second.Add("5")

	stored = first
	stored = second

	assert.Equal(t, 1, stored.Quantity("5"), "two adds on stale snapshots persist only one")
}

func TestCart_ConcurrentSnapshotWritesLoseUpdates(t *testing.T) {
	const writers = 50

	var (
		mu     sync.Mutex
		stored = Cart{}
		start  = make(chan struct{})
		read   sync.WaitGroup
		wg     sync.WaitGroup
	)

	read.Add(writers)
	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()

			mu.Lock()
			snapshot := stored.Clone()
			mu.Unlock()
			read.Done()

			<-start
			snapshot.Add("5")

			mu.Lock()
			stored = snapshot
			mu.Unlock()
		}()
	}

	read.Wait()
	close(start)
	wg.Wait()

	assert.Equal(t, 1, stored.Quantity("5"))
}

func TestItemID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want ItemID
	}{
		{name: "string", body: `{"itemID":"12"}`, want: "12"},
		{name: "number", body: `{"itemID":12}`, want: "12"},
		{name: "null", body: `{"itemID":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				ItemID ItemID `json:"itemID"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ItemID)
		})
	}

	t.Run("object rejected", func(t *testing.T) {
		var id ItemID
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
	})
}

func TestNextCatalogID(t *testing.T) {
	assert.Equal(t, 1, NextCatalogID(0, false))
	assert.Equal(t, 6, NextCatalogID(5, true))
}

func TestItemID_Valid(t *testing.T) {
	assert.True(t, ItemID("7").Valid())
	assert.True(t, ItemID("sku-12_a").Valid())
	assert.False(t, ItemID("").Valid())
	assert.False(t, ItemID("a.b").Valid())
	assert.False(t, ItemID("$set").Valid())
	assert.False(t, ItemID(strings.Repeat("x", 65)).Valid())
}
