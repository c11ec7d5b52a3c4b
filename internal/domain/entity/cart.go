package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"storefront/internal/errors"
)

// ItemID identifies a cart item. Clients send it either as a JSON string or a JSON number.
type ItemID string

// UnmarshalJSON accepts "7" and 7 alike.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode item id string")
		}
		*id = ItemID(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode item id number")
	}
	*id = ItemID(n.String())

	return nil
}

// maxItemIDLength matches the cart_items.item_id column width.
const maxItemIDLength = 64

// Valid reports whether the id can be used as a cart key in every store.
func (id ItemID) Valid() bool {
	if id == "" || len(id) > maxItemIDLength {
		return false
	}

	return !strings.ContainsAny(string(id), ".$\x00")
}

// String returns the map key form of the id.
func (id ItemID) String() string {
	return string(id)
}

// Cart maps item ids to quantities. Absent keys read as zero and quantities are never negative.
type Cart map[string]int

// Quantity returns the quantity held for itemID, zero when absent.
func (c Cart) Quantity(itemID string) int {
	return c[itemID]
}

// Add increments itemID by one.
func (c Cart) Add(itemID string) {
	c[itemID]++
}

// Remove decrements itemID by one when it is above zero.
func (c Cart) Remove(itemID string) {
	if c[itemID] > 0 {
		c[itemID]--
	}
}

// Clone returns an independent copy.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// WithSeededZeros returns a copy that also reports "0".."seedSize-1" with explicit zero quantities.
func (c Cart) WithSeededZeros(seedSize int) Cart {
	out := make(Cart, len(c)+max(seedSize, 0))
	for i := 0; i < seedSize; i++ {
		out[strconv.Itoa(i)] = 0
	}
	for k, v := range c {
		out[k] = v
	}

	return out
}
