// Package carousel keeps the carousel item index and the record page in step.
//
// The item list has a fixed size while the record set arrives later and may
// be empty, so the two indices are only loosely coupled: Advance and Retreat
// always move the item index, and only move the page when there is more than
// one page to move through.
package carousel

import "fmt"

// State is a snapshot of the controller.
type State struct {
	Index      int `json:"current_index"`
	Page       int `json:"current_page"`
	TotalPages int `json:"total_pages"`
}

// Controller is not safe for concurrent use.
type Controller struct {
	itemCount   int
	pageSize    int
	index       int
	page        int
	recordCount int
}

func NewController(itemCount, pageSize int) (*Controller, error) {
	if itemCount < 1 {
		return nil, fmt.Errorf("invalid item count: %d (must be >= 1)", itemCount)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("invalid page size: %d (must be >= 1)", pageSize)
	}
	return &Controller{
		itemCount: itemCount,
		pageSize:  pageSize,
		page:      1,
	}, nil
}

// SetRecordCount recomputes the page count and clamps the current page into
// [1, max(TotalPages, 1)].
func (c *Controller) SetRecordCount(n int) {
	if n < 0 {
		n = 0
	}
	c.recordCount = n

	maxPage := c.TotalPages()
	if maxPage < 1 {
		maxPage = 1
	}
	if c.page > maxPage {
		c.page = maxPage
	}
	if c.page < 1 {
		c.page = 1
	}
}

// TotalPages is ceil(recordCount / pageSize).
func (c *Controller) TotalPages() int {
	return (c.recordCount + c.pageSize - 1) / c.pageSize
}

// CanPaginate reports whether the page controls are enabled.
func (c *Controller) CanPaginate() bool {
	return c.TotalPages() > 1
}

// Advance moves to the next item and, when enabled, the next page.
// The last page wraps to the first.
func (c *Controller) Advance() {
	c.index = (c.index + 1) % c.itemCount
	if total := c.TotalPages(); total > 1 {
		c.page = (c.page % total) + 1
	}
}

// Retreat moves to the previous item and, when enabled, the previous page.
// The first page wraps to the last.
func (c *Controller) Retreat() {
	c.index = (c.index - 1 + c.itemCount) % c.itemCount
	if total := c.TotalPages(); total > 1 {
		c.page = ((c.page - 2 + total) % total) + 1
	}
}

func (c *Controller) Index() int    { return c.index }
func (c *Controller) Page() int     { return c.page }
func (c *Controller) PageSize() int { return c.pageSize }

func (c *Controller) State() State {
	return State{
		Index:      c.index,
		Page:       c.page,
		TotalPages: c.TotalPages(),
	}
}
