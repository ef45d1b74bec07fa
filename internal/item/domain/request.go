package domain

// CreateItemRequest is the create form. Price and Stock are pointers so that
// an omitted field can be told apart from a zero value.
type CreateItemRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Price          *float64          `json:"price" binding:"required,gte=0"`
	Category       string            `json:"category" binding:"required"`
	Stock          *int              `json:"stock" binding:"required,gte=0"`
	Specifications map[string]string `json:"specifications"`
}

// ToNewItem assumes the request has been validated.
func (r CreateItemRequest) ToNewItem() NewItem {
	item := NewItem{
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Specifications: r.Specifications,
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Stock != nil {
		item.Stock = *r.Stock
	}
	return item
}
