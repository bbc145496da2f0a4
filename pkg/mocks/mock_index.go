package mocks

import (
	"github.com/kgantsov/ravl/pkg/index"
	"github.com/stretchr/testify/mock"
)

type mockIndex struct {
	mock.Mock
}

func NewMockIndex() *mockIndex {
	return &mockIndex{}
}

func (m *mockIndex) Insert(key int32, value any) bool {
	args := m.Called(key, value)
	return args.Bool(0)
}

func (m *mockIndex) Delete(key int32) (any, error) {
	args := m.Called(key)
	return args.Get(0), args.Error(1)
}

func (m *mockIndex) Search(key int32) (*index.Entry, error) {
	args := m.Called(key)
	entry, _ := args.Get(0).(*index.Entry)
	return entry, args.Error(1)
}

func (m *mockIndex) Rank(key int32) (int, error) {
	args := m.Called(key)
	return args.Int(0), args.Error(1)
}

func (m *mockIndex) FindRank(r int) (*index.Entry, error) {
	args := m.Called(r)
	entry, _ := args.Get(0).(*index.Entry)
	return entry, args.Error(1)
}

func (m *mockIndex) Keys() []int32 {
	args := m.Called()
	return args.Get(0).([]int32)
}

func (m *mockIndex) Stats() index.Stats {
	args := m.Called()
	return args.Get(0).(index.Stats)
}
