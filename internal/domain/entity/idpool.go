package entity

import "sort"

// ID identifies a table, group or dock. All three node kinds draw from the same
// pool, so an ID is unique across the whole dock tree.
type ID uint32

// IndexPool hands out IDs and recycles them after deletion.
type IndexPool struct {
	recycled []ID // kept sorted ascending
	next     ID
}

// NewIndexPool creates an empty pool starting at 0.
func NewIndexPool() *IndexPool {
	return &IndexPool{}
}

// Allocate returns the smallest recycled ID, or the next never-issued one.
func (p *IndexPool) Allocate() ID {
	if len(p.recycled) > 0 {
		id := p.recycled[0]
		p.recycled = p.recycled[1:]
		return id
	}
	id := p.next
	p.next++
	return id
}

// Recycle returns id to the pool. IDs that were never issued are ignored, as are
// IDs already waiting in the pool.
func (p *IndexPool) Recycle(id ID) {
	if id >= p.next {
		return
	}
	i := sort.Search(len(p.recycled), func(i int) bool { return p.recycled[i] >= id })
	if i < len(p.recycled) && p.recycled[i] == id {
		return
	}
	p.recycled = append(p.recycled, 0)
	copy(p.recycled[i+1:], p.recycled[i:])
	p.recycled[i] = id
}

// HighWaterMark returns the first ID that has never been issued.
func (p *IndexPool) HighWaterMark() ID {
	return p.next
}
