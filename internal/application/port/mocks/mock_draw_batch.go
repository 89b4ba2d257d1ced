// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// MockDrawBatch is a testify mock of port.DrawBatch.
type MockDrawBatch struct {
	mock.Mock
}

var _ port.DrawBatch = (*MockDrawBatch)(nil)

// NewMockDrawBatch creates a mock and registers its expectations check with t.
func NewMockDrawBatch(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDrawBatch {
	m := &MockDrawBatch{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AddColorTriangles implements port.DrawBatch.
func (m *MockDrawBatch) AddColorTriangles(vertices []port.ColorVertex, indices []uint32) {
	m.Called(vertices, indices)
}

// AddSpriteTriangles implements port.DrawBatch.
func (m *MockDrawBatch) AddSpriteTriangles(atlas entity.AtlasID, vertices []port.SpriteVertex, indices []uint32) {
	m.Called(atlas, vertices, indices)
}

// AddText implements port.DrawBatch.
func (m *MockDrawBatch) AddText(font entity.Font, text string, x, y float32, color entity.Color) {
	m.Called(font, text, x, y, color)
}
