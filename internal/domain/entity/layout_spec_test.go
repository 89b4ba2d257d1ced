package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestLayoutNode_Validate(t *testing.T) {
	group := func(labels ...string) entity.LayoutNode { return entity.LayoutNode{Docks: labels} }

	tests := []struct {
		name     string
		node     entity.LayoutNode
		wantErr  error
		wantPath string
	}{
		{name: "default layout", node: entity.DefaultLayout()},
		{name: "root group", node: group("A")},
		{
			name: "root table with one child",
			node: entity.LayoutNode{Orientation: entity.Horizontal, Children: []entity.LayoutNode{group("A")}},
		},
		{name: "root group without docks", node: entity.LayoutNode{}, wantErr: entity.ErrEmptyGroup, wantPath: "root:"},
		{
			name: "nested table with one child",
			node: entity.LayoutNode{
				Orientation: entity.Horizontal,
				Children: []entity.LayoutNode{
					group("A"),
					{Orientation: entity.Vertical, Children: []entity.LayoutNode{group("B")}},
				},
			},
			wantErr:  entity.ErrDegenerateTable,
			wantPath: "root.1:",
		},
		{
			name: "empty group deep in the tree",
			node: entity.LayoutNode{
				Orientation: entity.Horizontal,
				Children: []entity.LayoutNode{
					{Orientation: entity.Vertical, Children: []entity.LayoutNode{group("A"), {Docks: []string{}}}},
					group("B"),
				},
			},
			wantErr:  entity.ErrEmptyGroup,
			wantPath: "root.0.1:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantPath)
		})
	}
}
