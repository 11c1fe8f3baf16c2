package source

import (
	"context"

	"github.com/huangsam/rategame/internal/contract"
	"github.com/huangsam/rategame/schema"
	"github.com/stretchr/testify/mock"
)

// MockCriteriaStore is a mock implementation of CriteriaStore for testing.
type MockCriteriaStore struct {
	mock.Mock
}

var _ contract.CriteriaStore = &MockCriteriaStore{} // Compile-time check

// Load implements the CriteriaSource interface.
func (m *MockCriteriaStore) Load(ctx context.Context) (schema.CriteriaTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(schema.CriteriaTable)
	return table, args.Error(1)
}

// Save implements the CriteriaStore interface.
func (m *MockCriteriaStore) Save(ctx context.Context, table schema.CriteriaTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// Location implements the CriteriaSource interface.
func (m *MockCriteriaStore) Location() string {
	args := m.Called()
	return args.String(0)
}
