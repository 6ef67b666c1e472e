package screen

import (
	"fmt"
	"net/http"
	"testing"

	"warehouse-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockRows(ids ...string) []models.StockListItem {
	rows := make([]models.StockListItem, len(ids))
	for i, id := range ids {
		rows[i] = models.StockListItem{ID: id, Quantity: i}
	}
	return rows
}

func TestNewListStateNilData(t *testing.T) {
	resp := models.Fail[[]models.StockListItem](http.StatusInternalServerError, "boom")
	state := NewListState(resp, 1, 10)

	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 10, state.Limit)
}

func TestListStateAppendAddsExactlyOne(t *testing.T) {
	state := &ListState[models.StockListItem]{
		Items:      stockRows("a", "b"),
		Pagination: &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2},
	}

	state.Append(models.StockListItem{ID: "c"})

	require.Len(t, state.Items, 3)
	assert.Equal(t, "c", state.Items[2].ID)
	assert.Equal(t, 3, state.Pagination.TotalItems)
}

func TestListStateRemoveDropsExactlyOne(t *testing.T) {
	state := &ListState[models.StockListItem]{
		Items:      stockRows("a", "b", "c"),
		Pagination: &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3},
	}
	original := state.Items

	assert.True(t, state.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, ids(state.Items))
	assert.Equal(t, 2, state.Pagination.TotalItems)
	// the seeded slice is not mutated in place
	assert.Equal(t, "b", original[1].ID)

	assert.False(t, state.Remove("missing"))
	assert.Len(t, state.Items, 2)
}

func TestListStateRecountsPages(t *testing.T) {
	rows := make([]models.StockListItem, 10)
	for i := range rows {
		rows[i] = models.StockListItem{ID: fmt.Sprintf("s%d", i)}
	}
	state := &ListState[models.StockListItem]{
		Items:      rows,
		Limit:      10,
		Pagination: &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 10},
	}

	state.Append(models.StockListItem{ID: "s10"})
	assert.Equal(t, 11, state.Pagination.TotalItems)
	assert.Equal(t, 2, state.Pagination.TotalPages)

	require.True(t, state.Remove("s10"))
	require.True(t, state.Remove("s0"))
	assert.Equal(t, 9, state.Pagination.TotalItems)
	assert.Equal(t, 1, state.Pagination.TotalPages)
}

func TestListStateUpdateByID(t *testing.T) {
	state := &ListState[models.StockListItem]{Items: stockRows("a", "b")}

	ok := state.Update("b", func(s models.StockListItem) models.StockListItem {
		s.Quantity = 42
		return s
	})

	assert.True(t, ok)
	assert.Equal(t, 0, state.Items[0].Quantity)
	assert.Equal(t, 42, state.Items[1].Quantity)
	assert.False(t, state.Update("zzz", func(s models.StockListItem) models.StockListItem { return s }))
}

func TestCursorPaginationTotalsUntouched(t *testing.T) {
	state := &ListState[models.StockListItem]{
		Items:      stockRows("a"),
		Pagination: &models.Pagination{HasNext: true, Limit: 10},
	}

	state.Append(models.StockListItem{ID: "b"})
	state.Remove("a")

	assert.Equal(t, 0, state.Pagination.TotalItems)
	assert.Equal(t, []string{"b"}, ids(state.Items))
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("edit")
	assert.True(t, ok)
	assert.Equal(t, ModeEdit, m)

	_, ok = ParseMode("archive")
	assert.False(t, ok)
}

func ids[T models.Identifiable](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.GetID()
	}
	return out
}
