package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/ridloal/item-inventory-service/internal/item/domain"
	"github.com/ridloal/item-inventory-service/internal/item/repository"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(id int) (domain.Item, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.Item), args.Bool(1)
}

func (m *MockItemRepository) ListAll() []domain.Item {
	args := m.Called()
	if res := args.Get(0); res != nil {
		return res.([]domain.Item)
	}
	return nil
}

func (m *MockItemRepository) FilterByCategory(category string) []domain.Item {
	args := m.Called(category)
	if res := args.Get(0); res != nil {
		return res.([]domain.Item)
	}
	return nil
}

func (m *MockItemRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockItemRepository) Create(item domain.NewItem) domain.Item {
	args := m.Called(item)
	return args.Get(0).(domain.Item)
}

func (m *MockItemRepository) Remove(id int) {
	m.Called(id)
}

func (m *MockItemRepository) Update(id int, patch domain.ItemPatch) (domain.Item, bool) {
	args := m.Called(id, patch)
	return args.Get(0).(domain.Item), args.Bool(1)
}

func (m *MockItemRepository) Reset() {
	m.Called()
}

func (m *MockItemRepository) Subscribe(fn repository.Listener) func() {
	args := m.Called(fn)
	if res := args.Get(0); res != nil {
		return res.(func())
	}
	return func() {}
}
