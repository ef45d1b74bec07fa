package service

import (
	"context"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
)

const listTitle = "Item List"

// ItemRow is one line of the list view.
type ItemRow struct {
	domain.Item
	PriceLabel string `json:"price_label"`
	LowStock   bool   `json:"low_stock"`
}

type ListView struct {
	Title    string    `json:"title"`
	Total    int       `json:"total"`
	Category string    `json:"category,omitempty"`
	Items    []ItemRow `json:"items"`
}

type DetailView struct {
	Item           domain.Item       `json:"item"`
	PriceLabel     string            `json:"price_label"`
	LowStock       bool              `json:"low_stock"`
	Specifications map[string]string `json:"specifications"`
}

type AboutView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Features    []string `json:"features"`
	Routes      []string `json:"routes"`
}

func newItemRow(item domain.Item) ItemRow {
	return ItemRow{
		Item:       item,
		PriceLabel: item.PriceLabel(),
		LowStock:   item.IsLowStock(),
	}
}

// ListView renders every item, or only one category when category is set.
// Total is always the size of the whole collection.
func (s *itemServiceImpl) ListView(ctx context.Context, category string) ListView {
	items := s.ListItems(ctx, category)
	rows := make([]ItemRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, newItemRow(it))
	}
	return ListView{
		Title:    listTitle,
		Total:    s.repo.Count(),
		Category: category,
		Items:    rows,
	}
}

func (s *itemServiceImpl) DetailView(ctx context.Context, id int) (*DetailView, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DetailView{
		Item:           *item,
		PriceLabel:     item.PriceLabel(),
		LowStock:       item.IsLowStock(),
		Specifications: item.Specifications,
	}, nil
}

func (s *itemServiceImpl) AboutView(_ context.Context) AboutView {
	return AboutView{
		Name:        "Item Inventory",
		Description: "Inventory management demo: list, create, update and delete items held in memory for the session.",
		Version:     s.version,
		Features: []string{
			"in-memory item store seeded from a bundled dataset",
			"category filter and low stock flag",
			"live change feed over server-sent events",
			"reset to seed data",
		},
		Routes: []string{"/", "/items", "/item/:id", "/about"},
	}
}
