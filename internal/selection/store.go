package selection

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/enums"
)

// DefaultLodgeNights is applied when a lodge is selected without an explicit
// night count.
const DefaultLodgeNights = 2

// SelectedItem is one chosen package component. Name and price are copied
// from the catalog at selection time and never re-fetched.
type SelectedItem struct {
	ID        string
	CatalogID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Type      enums.ItemType
	Nights    *int
}

// SelectionID derives the de-duplication key for a catalog entry.
func SelectionID(itemType enums.ItemType, catalogID uuid.UUID) string {
	return fmt.Sprintf("%s-%s", itemType, catalogID)
}

// Patch carries the fields Update may merge into an existing entry.
// In practice only Nights is patched, on lodge entries.
type Patch struct {
	Name   *string
	Price  *decimal.Decimal
	Nights *int
}

// Store owns the ordered collection of selected items for one builder
// session. It is exclusively owned by that session; callers serialize access.
type Store struct {
	items []SelectedItem
}

// NewStore returns an empty selection.
func NewStore() *Store {
	return &Store{}
}

// Add appends the item. Toggle semantics (skip-if-present) are the caller's
// responsibility; Add only normalizes lodge nights.
func (s *Store) Add(item SelectedItem) {
	if item.Type == enums.ItemTypeLodge {
		item.Nights = normalizeNights(item.Nights)
	}
	s.items = append(s.items, item)
}

// Remove drops the entry with the given id. Missing ids are a no-op.
func (s *Store) Remove(itemID string) {
	for i, item := range s.items {
		if item.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Update merges the patch into the entry with the given id, leaving other
// fields untouched. Missing ids are a no-op.
func (s *Store) Update(itemID string, patch Patch) {
	for i := range s.items {
		if s.items[i].ID != itemID {
			continue
		}
		if patch.Name != nil {
			s.items[i].Name = *patch.Name
		}
		if patch.Price != nil {
			s.items[i].Price = *patch.Price
		}
		if patch.Nights != nil {
			s.items[i].Nights = normalizeNights(patch.Nights)
		}
		return
	}
}

// Contains reports whether an entry with the given id is selected.
func (s *Store) Contains(itemID string) bool {
	for _, item := range s.items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// List returns a copy of the selection in insertion order.
func (s *Store) List() []SelectedItem {
	out := make([]SelectedItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of selected entries.
func (s *Store) Len() int {
	return len(s.items)
}

func normalizeNights(nights *int) *int {
	value := DefaultLodgeNights
	if nights != nil {
		value = *nights
	}
	if value < 1 {
		value = 1
	}
	return &value
}
