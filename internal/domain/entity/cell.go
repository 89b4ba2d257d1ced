package entity

// Orientation is the stacking direction of a table.
type Orientation int

const (
	Horizontal Orientation = iota // children laid out left to right
	Vertical                      // children stacked top to bottom
)

// Opposite returns the other orientation. Nested splits alternate.
func (o Orientation) Opposite() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps "vertical"/"horizontal" to an Orientation.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "vertical", "v":
		return Vertical, true
	case "horizontal", "h":
		return Horizontal, true
	}
	return Horizontal, false
}

// CellKind tags the two node variants a table can hold.
type CellKind int

const (
	CellTable CellKind = iota
	CellGroup
)

func (k CellKind) String() string {
	if k == CellGroup {
		return "group"
	}
	return "table"
}

// Cell is a reference to a table or a group stored in the registry.
type Cell struct {
	Kind CellKind
	ID   ID
}

// TableCell references a table.
func TableCell(id ID) Cell {
	return Cell{Kind: CellTable, ID: id}
}

// GroupCell references a group.
func GroupCell(id ID) Cell {
	return Cell{Kind: CellGroup, ID: id}
}
