package entity

import "fmt"

// PlacementKind distinguishes the two ways a dropped dock can get a new group.
type PlacementKind int

const (
	// NeedNewTable wraps GroupID in a new table and puts the new group before
	// (Index 0) or after (Index 1) it.
	NeedNewTable PlacementKind = iota
	// TableExists inserts the new group into TableID at Index.
	TableExists
)

// CellPosition is the placement decision for a new group.
type CellPosition struct {
	Kind    PlacementKind
	GroupID ID
	TableID ID
	Index   int
}

// NewTablePosition builds a NeedNewTable placement.
func NewTablePosition(groupID ID, index int) CellPosition {
	return CellPosition{Kind: NeedNewTable, GroupID: groupID, Index: index}
}

// ExistingTablePosition builds a TableExists placement.
func ExistingTablePosition(tableID ID, index int) CellPosition {
	return CellPosition{Kind: TableExists, TableID: tableID, Index: index}
}

func (p CellPosition) String() string {
	if p.Kind == NeedNewTable {
		return fmt.Sprintf("NeedNewTable{group:%d index:%d}", p.GroupID, p.Index)
	}
	return fmt.Sprintf("TableExists{table:%d index:%d}", p.TableID, p.Index)
}
