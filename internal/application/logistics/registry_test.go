package logistics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logisticsApp "github.com/andrescamacho/settlement-go/internal/application/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

func newNode(t *testing.T, name string, x, y, z float64) *logistics.WarehouseNode {
	t.Helper()
	buffer, err := logistics.NewResourceBuffer(logistics.ResourceWood, 10)
	require.NoError(t, err)
	node, err := logistics.NewWarehouseNode(logistics.NewNodeID(), name, shared.NewPosition(x, y, z), buffer)
	require.NoError(t, err)
	return node
}

func TestRegistry_NearestNode(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	a := newNode(t, "A", 0, 0, 0)
	b := newNode(t, "B", 10, 0, 0)
	registry.Register(a)
	registry.Register(b)

	nearest, ok := registry.NearestNode(shared.NewPosition(1, 0, 0))
	require.True(t, ok)
	assert.Same(t, a, nearest)

	nearest, ok = registry.NearestNode(shared.NewPosition(9, 0, 0))
	require.True(t, ok)
	assert.Same(t, b, nearest)

	registry.Unregister(a)
	nearest, ok = registry.NearestNode(shared.NewPosition(1, 0, 0))
	require.True(t, ok)
	assert.Same(t, b, nearest)
}

func TestRegistry_EmptyHasNoTarget(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()

	nearest, ok := registry.NearestNode(shared.NewPosition(0, 0, 0))

	assert.False(t, ok)
	assert.Nil(t, nearest)
	assert.Empty(t, registry.Nodes())
}

func TestRegistry_SetSemantics(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	a := newNode(t, "A", 0, 0, 0)
	b := newNode(t, "B", 5, 0, 0)

	registry.Register(a)
	registry.Register(a)
	assert.Equal(t, 1, registry.Len())

	registry.Unregister(b)
	assert.Equal(t, 1, registry.Len())

	registry.Register(nil)
	registry.Unregister(nil)
	assert.Equal(t, 1, registry.Len())

	registry.Register(b)
	registry.Unregister(a)
	registry.Unregister(a)
	assert.Equal(t, []*logistics.WarehouseNode{b}, registry.Nodes())
}

func TestRegistry_TieGoesToFirstRegistered(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	east := newNode(t, "east", 1, 0, 0)
	west := newNode(t, "west", -1, 0, 0)
	registry.Register(east)
	registry.Register(west)

	nearest, ok := registry.NearestNode(shared.NewPosition(0, 0, 0))
	require.True(t, ok)
	assert.Same(t, east, nearest)

	registry.Unregister(east)
	registry.Register(east)

	nearest, ok = registry.NearestNode(shared.NewPosition(0, 0, 0))
	require.True(t, ok)
	assert.Same(t, west, nearest, "re-registration moves a node to the back")
}

func TestRegistry_NearestNodeWhere(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	empty := newNode(t, "empty", 1, 0, 0)
	stocked := newNode(t, "stocked", 8, 0, 0)
	stocked.Buffer().Add(3)
	registry.Register(empty)
	registry.Register(stocked)

	hasStock := func(node *logistics.WarehouseNode) bool { return node.Buffer().HasAtLeastOneUnit() }

	nearest, ok := registry.NearestNodeWhere(shared.NewPosition(0, 0, 0), hasStock)
	require.True(t, ok)
	assert.Same(t, stocked, nearest)

	stocked.Buffer().TakeAll()
	_, ok = registry.NearestNodeWhere(shared.NewPosition(0, 0, 0), hasStock)
	assert.False(t, ok)
}

func TestRegistry_NodesIsSnapshot(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	registry.Register(newNode(t, "A", 0, 0, 0))

	nodes := registry.Nodes()
	nodes[0] = nil

	assert.NotNil(t, registry.Nodes()[0])
}

func TestRegistry_SingleNodeIsNearestFromAnywhere(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	only := newNode(t, "only", 3, -2, 7)
	registry.Register(only)

	queries := []shared.Position{
		shared.NewPosition(0, 0, 0),
		shared.NewPosition(3, -2, 7),
		shared.NewPosition(-1e6, 5e5, 1e6),
		shared.NewPosition(1e9, 1e9, -1e9),
	}
	for _, q := range queries {
		nearest, ok := registry.NearestNode(q)
		require.True(t, ok, "query %s", q)
		assert.Same(t, only, nearest, "query %s", q)
	}
}

// The returned node is never farther than any other registered node.
func TestRegistry_RandomQueriesMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coord := func() float64 { return rng.Float64()*200 - 100 }

	for run := 0; run < 50; run++ {
		registry := logisticsApp.NewInMemoryWarehouseRegistry()
		count := 1 + rng.Intn(30)
		nodes := make([]*logistics.WarehouseNode, 0, count)
		for i := 0; i < count; i++ {
			node := newNode(t, "node", coord(), coord(), coord())
			nodes = append(nodes, node)
			registry.Register(node)
		}

		for q := 0; q < 20; q++ {
			query := shared.NewPosition(coord(), coord(), coord())

			nearest, ok := registry.NearestNode(query)
			require.True(t, ok)

			best := math.Inf(1)
			for _, node := range nodes {
				best = math.Min(best, query.DistanceTo(node.Position()))
			}
			require.Equal(t, best, query.DistanceTo(nearest.Position()))
		}
	}
}

func TestRegistry_NonFiniteQueryHasNoTarget(t *testing.T) {
	registry := logisticsApp.NewInMemoryWarehouseRegistry()
	registry.Register(newNode(t, "A", 0, 0, 0))
	registry.Register(newNode(t, "B", 10, 0, 0))

	for _, q := range []shared.Position{
		shared.NewPosition(math.NaN(), 9, 0),
		shared.NewPosition(0, math.Inf(1), 0),
		shared.NewPosition(0, 0, math.Inf(-1)),
	} {
		nearest, ok := registry.NearestNode(q)
		assert.False(t, ok)
		assert.Nil(t, nearest)
	}
}
