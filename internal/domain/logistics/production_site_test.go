package logistics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/settlement-go/internal/domain/logistics"
	"github.com/andrescamacho/settlement-go/internal/domain/shared"
)

func TestNewProductionSite(t *testing.T) {
	site, err := logistics.NewProductionSite("sawmill", shared.NewPosition(1, 0, 2), logistics.ResourcePlanks, 20, 2)
	require.NoError(t, err)

	assert.Equal(t, "sawmill", site.Name())
	assert.Equal(t, site.ID(), site.Node().ID())
	assert.Same(t, site.Buffer(), site.Node().Buffer())
	assert.Equal(t, shared.NewPosition(1, 0, 2), site.Node().Position())
	assert.NotNil(t, site.Producer())
	assert.True(t, site.ResourceProducer().Enabled())
}

func TestNewProductionSite_Validation(t *testing.T) {
	_, err := logistics.NewProductionSite("", shared.Position{}, logistics.ResourceWood, 10, 1)
	assert.Error(t, err)

	_, err = logistics.NewProductionSite("farm", shared.Position{}, logistics.ResourceFood, 0, 1)
	assert.Error(t, err)

	_, err = logistics.NewProductionSite("farm", shared.Position{}, logistics.ResourceFood, 10, -1)
	assert.Error(t, err)
}

func TestProducer_ProduceFillsBufferUntilFull(t *testing.T) {
	site, err := logistics.NewProductionSite("quarry", shared.Position{}, logistics.ResourceStone, 5, 2)
	require.NoError(t, err)
	producer := site.ResourceProducer()

	assert.True(t, producer.Produce(1))
	assert.True(t, producer.Produce(1))
	assert.True(t, producer.Produce(1))
	assert.Equal(t, 5.0, site.Buffer().Amount())

	assert.False(t, producer.Produce(1), "full buffer rejects output")
	assert.False(t, producer.Produce(0))
}

func TestProducer_PauseKeepsBufferedOutput(t *testing.T) {
	site, err := logistics.NewProductionSite("farm", shared.Position{}, logistics.ResourceFood, 10, 3)
	require.NoError(t, err)
	producer := site.ResourceProducer()

	producer.Produce(1)
	producer.SetProductionEnabled(false)

	assert.False(t, producer.Produce(1))
	assert.Equal(t, 3.0, site.Buffer().Amount())

	producer.SetProductionEnabled(true)
	assert.True(t, producer.Produce(1))
	assert.Equal(t, 6.0, site.Buffer().Amount())
}

func TestWarehouseNode_Validation(t *testing.T) {
	buf, err := logistics.NewResourceBuffer(logistics.ResourceIron, 4)
	require.NoError(t, err)

	_, err = logistics.NewWarehouseNode(logistics.NodeID{}, "mine", shared.Position{}, buf)
	assert.Error(t, err)

	_, err = logistics.NewWarehouseNode(logistics.NewNodeID(), "mine", shared.Position{}, nil)
	assert.Error(t, err)

	node, err := logistics.NewWarehouseNode(logistics.NewNodeID(), "mine", shared.NewPosition(1, 1, 1), buf)
	require.NoError(t, err)
	assert.Contains(t, node.String(), "IRON")
}

func TestParseNodeID(t *testing.T) {
	id := logistics.NewNodeID()

	parsed, err := logistics.ParseNodeID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = logistics.ParseNodeID("")
	assert.Error(t, err)

	_, err = logistics.ParseNodeID("not-a-uuid")
	assert.Error(t, err)
}

func TestParseResourceKind(t *testing.T) {
	kind, err := logistics.ParseResourceKind(" wood ")
	require.NoError(t, err)
	assert.Equal(t, logistics.ResourceWood, kind)

	_, err = logistics.ParseResourceKind("unobtainium")
	assert.Error(t, err)
}
