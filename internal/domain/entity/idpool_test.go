package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestIndexPool_AllocateRecycle(t *testing.T) {
	p := entity.NewIndexPool()

	assert.Equal(t, entity.ID(0), p.Allocate())
	assert.Equal(t, entity.ID(1), p.Allocate())
	assert.Equal(t, entity.ID(2), p.Allocate())

	p.Recycle(1)
	assert.Equal(t, entity.ID(1), p.Allocate())
	assert.Equal(t, entity.ID(3), p.Allocate())
}

func TestIndexPool_SmallestRecycledFirst(t *testing.T) {
	p := entity.NewIndexPool()
	for i := 0; i < 6; i++ {
		p.Allocate()
	}

	p.Recycle(4)
	p.Recycle(1)
	p.Recycle(3)

	assert.Equal(t, entity.ID(1), p.Allocate())
	assert.Equal(t, entity.ID(3), p.Allocate())
	assert.Equal(t, entity.ID(4), p.Allocate())
	assert.Equal(t, entity.ID(6), p.Allocate())
}

func TestIndexPool_IgnoresForeignAndDuplicateIDs(t *testing.T) {
	p := entity.NewIndexPool()
	p.Allocate()
	p.Allocate()

	p.Recycle(7)
	p.Recycle(0)
	p.Recycle(0)

	assert.Equal(t, entity.ID(0), p.Allocate())
	assert.Equal(t, entity.ID(2), p.Allocate())
	assert.Equal(t, entity.ID(3), p.HighWaterMark())
}
