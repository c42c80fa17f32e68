package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, items, pageSize, records int) *Controller {
	t.Helper()
	c, err := NewController(items, pageSize)
	require.NoError(t, err)
	c.SetRecordCount(records)
	return c
}

func TestNewController_Validation(t *testing.T) {
	_, err := NewController(0, 5)
	assert.Error(t, err)

	_, err = NewController(3, 0)
	assert.Error(t, err)

	c, err := NewController(3, 5)
	require.NoError(t, err)
	assert.Equal(t, State{Index: 0, Page: 1, TotalPages: 0}, c.State())
}

func TestController_AdvanceVisitsPagesInOrder(t *testing.T) {
	// 12 records, page size 5
	c := newController(t, 3, 5, 12)
	require.Equal(t, 3, c.TotalPages())

	var pages []int
	for i := 0; i < 3; i++ {
		c.Advance()
		pages = append(pages, c.Page())
	}
	assert.Equal(t, []int{2, 3, 1}, pages)
}

func TestController_RetreatWrapsBackward(t *testing.T) {
	c := newController(t, 3, 5, 12)

	c.Retreat()
	assert.Equal(t, 3, c.Page())
	assert.Equal(t, 2, c.Index())

	c.Retreat()
	assert.Equal(t, 2, c.Page())
	assert.Equal(t, 1, c.Index())
}

func TestController_IndexCyclesAfterItemCountAdvances(t *testing.T) {
	for items := 1; items <= 6; items++ {
		c := newController(t, items, 5, 12)
		c.Advance() // arbitrary start
		start := c.Index()

		for i := 0; i < items; i++ {
			c.Advance()
		}
		assert.Equal(t, start, c.Index(), "items=%d", items)
	}
}

func TestController_PageCyclesAfterTotalPagesMoves(t *testing.T) {
	for records := 1; records <= 40; records++ {
		c := newController(t, 3, 4, records)
		total := c.TotalPages()
		start := c.Page()

		for i := 0; i < total; i++ {
			c.Advance()
		}
		assert.Equal(t, start, c.Page(), "advance records=%d", records)

		for i := 0; i < total; i++ {
			c.Retreat()
		}
		assert.Equal(t, start, c.Page(), "retreat records=%d", records)
	}
}

func TestController_AdvanceThenRetreatRestoresState(t *testing.T) {
	for records := 0; records <= 25; records++ {
		c := newController(t, 3, 5, records)
		for step := 0; step < 7; step++ {
			before := c.State()
			c.Advance()
			c.Retreat()
			assert.Equal(t, before, c.State(), "records=%d step=%d", records, step)

			// move to another valid starting state
			c.Advance()
		}
	}
}

func TestController_SinglePageFreezesPage(t *testing.T) {
	c := newController(t, 3, 5, 5)
	require.Equal(t, 1, c.TotalPages())
	assert.False(t, c.CanPaginate())

	for i := 0; i < 10; i++ {
		c.Advance()
		assert.Equal(t, 1, c.Page())
		c.Retreat()
		c.Retreat()
		assert.Equal(t, 1, c.Page())
	}
}

func TestController_EmptyRecordsStillMovesIndex(t *testing.T) {
	c := newController(t, 3, 5, 0)
	assert.Equal(t, 0, c.TotalPages())
	assert.False(t, c.CanPaginate())

	c.Advance()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 1, c.Page())

	c.Retreat()
	c.Retreat()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 1, c.Page())
}

func TestController_SetRecordCountClampsPage(t *testing.T) {
	c := newController(t, 3, 5, 20)
	c.Advance()
	c.Advance()
	c.Advance()
	require.Equal(t, 4, c.Page())

	c.SetRecordCount(7)
	assert.Equal(t, 2, c.Page())

	c.SetRecordCount(0)
	assert.Equal(t, 1, c.Page())
	assert.Equal(t, 0, c.TotalPages())
}
