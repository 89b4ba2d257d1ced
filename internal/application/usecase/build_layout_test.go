package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestBuildLayout_DefaultLayoutRoundTrips(t *testing.T) {
	d := buildDocks(t, entity.DefaultLayout())

	assert.Equal(t, entity.DefaultLayout(), DescribeLayout(d))
	assert.Equal(t, 3, d.TableCount())
	assert.Equal(t, 5, d.GroupCount())
	assert.Equal(t, 6, d.DockCount())
	assert.NoError(t, d.Validate())
}

func TestBuildLayout_SingleGroupRoot(t *testing.T) {
	d := buildDocks(t, group("Only"))
	assert.Equal(t, table(entity.Horizontal, group("Only")), DescribeLayout(d))
}

func TestBuildLayout_VerticalRootGetsOwnTable(t *testing.T) {
	d := buildDocks(t, table(entity.Vertical, group("A"), group("B")))

	assert.Equal(t,
		table(entity.Horizontal, table(entity.Vertical, group("A"), group("B"))),
		DescribeLayout(d))
}

func TestBuildLayout_RejectsMalformedNodes(t *testing.T) {
	tests := []struct {
		name string
		node entity.LayoutNode
		want error
	}{
		{
			name: "empty group",
			node: table(entity.Horizontal, group("A"), group()),
			want: ErrEmptyGroup,
		},
		{
			name: "single child table",
			node: table(entity.Horizontal, group("A"), table(entity.Vertical, group("B"))),
			want: ErrDegenerateTable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDocks()
			err := BuildLayout(context.Background(), d, tt.node)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, d.Root().Len(), "nothing built")
			assert.Equal(t, 0, d.DockCount())
		})
	}
}

func TestBuildLayout_RefusesPopulatedRegistry(t *testing.T) {
	d := buildDocks(t, group("A"))
	err := BuildLayout(context.Background(), d, group("B"))
	assert.ErrorIs(t, err, ErrRegistryNotEmpty)
}
