package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
	"github.com/ridloal/item-inventory-service/internal/item/repository"
	"github.com/ridloal/item-inventory-service/internal/platform/logger"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrValidation   = errors.New("invalid item")
)

type ItemService interface {
	ListItems(ctx context.Context, category string) []domain.Item
	CountItems(ctx context.Context) int
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error)
	// UpdateItem returns (nil, nil) when no item has the id; the update is a no-op then.
	UpdateItem(ctx context.Context, id int, patch domain.ItemPatch) (*domain.Item, error)
	RemoveItem(ctx context.Context, id int)
	ResetItems(ctx context.Context) int
	// Watch streams store events until ctx is done. Events are dropped when
	// the buffer is full.
	Watch(ctx context.Context, buffer int) <-chan repository.Event

	ListView(ctx context.Context, category string) ListView
	DetailView(ctx context.Context, id int) (*DetailView, error)
	AboutView(ctx context.Context) AboutView
}

type itemServiceImpl struct {
	repo    repository.ItemRepository
	version string
}

func NewItemService(repo repository.ItemRepository, version string) ItemService {
	return &itemServiceImpl{repo: repo, version: version}
}

func (s *itemServiceImpl) ListItems(_ context.Context, category string) []domain.Item {
	if category != "" {
		return s.repo.FilterByCategory(category)
	}
	return s.repo.ListAll()
}

func (s *itemServiceImpl) CountItems(_ context.Context) int {
	return s.repo.Count()
}

func (s *itemServiceImpl) GetItem(_ context.Context, id int) (*domain.Item, error) {
	item, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *itemServiceImpl) CreateItem(_ context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	created := s.repo.Create(req.ToNewItem())
	return &created, nil
}

func (s *itemServiceImpl) UpdateItem(_ context.Context, id int, patch domain.ItemPatch) (*domain.Item, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	item, ok := s.repo.Update(id, patch)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *itemServiceImpl) RemoveItem(_ context.Context, id int) {
	s.repo.Remove(id)
}

func (s *itemServiceImpl) ResetItems(_ context.Context) int {
	s.repo.Reset()
	count := s.repo.Count()
	logger.Info("Svc.ResetItems: collection restored to seed with %d items", count)
	return count
}

func (s *itemServiceImpl) Watch(ctx context.Context, buffer int) <-chan repository.Event {
	if buffer <= 0 {
		buffer = 1
	}
	events := make(chan repository.Event, buffer)
	done := make(chan struct{})

	unsubscribe := s.repo.Subscribe(func(ev repository.Event) {
		select {
		case <-done:
		case events <- ev:
		default:
			// slow consumer; the next event still carries the current count
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		close(done)
	}()
	return events
}

func validateCreate(req domain.CreateItemRequest) error {
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		problems = append(problems, "category is required")
	}
	switch {
	case req.Price == nil:
		problems = append(problems, "price is required")
	case *req.Price < 0:
		problems = append(problems, "price must not be negative")
	}
	switch {
	case req.Stock == nil:
		problems = append(problems, "stock is required")
	case *req.Stock < 0:
		problems = append(problems, "stock must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, ", "))
	}
	return nil
}

func validatePatch(patch domain.ItemPatch) error {
	var problems []string
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		problems = append(problems, "name must not be blank")
	}
	if patch.Category != nil && strings.TrimSpace(*patch.Category) == "" {
		problems = append(problems, "category must not be blank")
	}
	if patch.Price != nil && *patch.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		problems = append(problems, "stock must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, ", "))
	}
	return nil
}
