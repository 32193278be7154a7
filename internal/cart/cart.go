package cart

import (
	"github.com/labellecuisine/ordering-backend/pkg/types"
)

// Line is one row of the cart: a single catalog item and its quantity.
// Name, price and category are denormalized snapshots taken when the item
// was first added.
type Line struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int         `json:"quantity"`
	Category string      `json:"category"`
}

// ItemInput is the shape callers pass when adding an item. Quantity is not
// part of it; a first add always lands at quantity 1.
type ItemInput struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Category string      `json:"category"`
}

// Cart is a pure value container over an ordered line sequence. Invariants
// held by every mutator: at most one line per item id, quantity >= 1 for
// every resident line, insertion order preserved.
type Cart struct {
	lines []Line
}

// New builds a cart over a rehydrated line sequence.
func New(lines []Line) Cart {
	return Cart{lines: lines}
}

// Lines returns a copy of the ordered line sequence.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// AddItem increments the existing line for the item or appends a new line
// at quantity 1. Repeated ids are resolved by the increment rule, never
// rejected.
func (c *Cart) AddItem(item ItemInput) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Category: item.Category,
	})
}

// RemoveItem deletes the line with the given id. Removing an absent id is
// a no-op, not an error.
func (c *Cart) RemoveItem(id int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less is
// equivalent to RemoveItem. Updating an absent id is a no-op; it never
// synthesizes a new line.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart entirely.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalItems is the summed quantity across lines, recomputed on every read.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the summed line price x quantity, recomputed on every read.
func (c *Cart) TotalPrice() types.Money {
	total := types.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Price.MulInt(line.Quantity))
	}
	return total
}
