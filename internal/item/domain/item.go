package domain

import "fmt"

// LowStockThreshold is the stock level under which an item is flagged to viewers.
const LowStockThreshold = 10

type Item struct {
	ID             int               `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Description    string            `json:"description" yaml:"description"`
	Price          float64           `json:"price" yaml:"price"`
	Category       string            `json:"category" yaml:"category"`
	Stock          int               `json:"stock" yaml:"stock"`
	Specifications map[string]string `json:"specifications" yaml:"specifications"`
}

// NewItem holds every Item attribute except the id, which the store assigns.
type NewItem struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Category       string            `json:"category"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications"`
}

// ItemPatch is a partial update. Nil fields are left untouched; a non-nil
// Specifications map replaces the whole mapping.
type ItemPatch struct {
	Name           *string           `json:"name,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Price          *float64          `json:"price,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Stock          *int              `json:"stock,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Category == nil && p.Stock == nil && p.Specifications == nil
}

// Apply returns a copy of item with the patch merged in.
func (p ItemPatch) Apply(item Item) Item {
	merged := item.Clone()
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.Stock != nil {
		merged.Stock = *p.Stock
	}
	if p.Specifications != nil {
		merged.Specifications = cloneSpecs(p.Specifications)
	}
	return merged
}

// WithID builds the stored record for a new item.
func (n NewItem) WithID(id int) Item {
	return Item{
		ID:             id,
		Name:           n.Name,
		Description:    n.Description,
		Price:          n.Price,
		Category:       n.Category,
		Stock:          n.Stock,
		Specifications: cloneSpecs(n.Specifications),
	}
}

// Clone deep-copies the item, specifications included.
func (i Item) Clone() Item {
	out := i
	out.Specifications = cloneSpecs(i.Specifications)
	return out
}

func (i Item) IsLowStock() bool {
	return i.Stock < LowStockThreshold
}

// PriceLabel formats the price with two decimals.
func (i Item) PriceLabel() string {
	return fmt.Sprintf("%.2f", i.Price)
}

func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for idx, it := range items {
		out[idx] = it.Clone()
	}
	return out
}

func cloneSpecs(src map[string]string) map[string]string {
	if src == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
