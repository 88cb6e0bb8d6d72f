package view

import (
	"testing"
	"time"

	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrompter struct {
	category string
	amount   float64
}

func (p stubPrompter) CategoryFilterText() string { return p.category }
func (p stubPrompter) AmountFilterValue() float64 { return p.amount }

func newTx(t *testing.T, amount float64, category string) *entity.Transaction {
	t.Helper()
	clock := entity.ClockFunc(func() time.Time { return time.Date(2024, 2, 29, 8, 0, 0, 0, time.Local) })
	tx, err := entity.NewTransaction(amount, category, clock)
	require.NoError(t, err)
	return tx
}

func TestTableView(t *testing.T) {
	v := NewTableView(nil)

	t.Run("Empty", func(t *testing.T) {
		table := v.Table()
		assert.Empty(t, table.Rows)
		assert.NotNil(t, table.Rows)
		assert.Equal(t, 0.0, table.Total)
		assert.Empty(t, table.Highlighted)
	})

	t.Run("Append then refresh", func(t *testing.T) {
		a, b := newTx(t, 50, "food"), newTx(t, 25.5, "travel")

		v.AppendRow(a.Amount(), a.Category(), a.Timestamp())
		assert.Len(t, v.Table().Rows, 1)

		v.RefreshTable([]*entity.Transaction{a, b})
		table := v.Table()
		require.Len(t, table.Rows, 2)
		assert.Equal(t, Row{Serial: 2, Amount: 25.5, Category: "travel", Timestamp: "29-02-2024 08:00"}, table.Rows[1])
		assert.Equal(t, 75.5, table.Total)
	})

	t.Run("Highlights replace previous marks", func(t *testing.T) {
		v.HighlightRows([]int{1, 0})
		assert.Equal(t, []int{0, 1}, v.Table().Highlighted)

		v.HighlightRows([]int{1})
		assert.False(t, v.IsHighlighted(0))
		assert.True(t, v.IsHighlighted(1))

		v.RefreshTable(nil)
		assert.False(t, v.IsHighlighted(1))
		assert.Equal(t, 0.0, v.Table().Total)
	})

	t.Run("Notices", func(t *testing.T) {
		v.Notify("first")
		v.Notify("second")

		assert.Equal(t, []string{"first", "second"}, v.Table().Notices)
		assert.Equal(t, []string{"first", "second"}, v.TakeTable().Notices)
		assert.Empty(t, v.DrainNotices())
	})
}

func TestTableViewPrompts(t *testing.T) {
	assert.Equal(t, "", NewTableView(nil).PromptForCategoryFilterText())
	assert.Equal(t, 0.0, NewTableView(nil).PromptForAmountFilterValue())

	v := NewTableView(stubPrompter{category: "food", amount: 12.5})
	assert.Equal(t, "food", v.PromptForCategoryFilterText())
	assert.Equal(t, 12.5, v.PromptForAmountFilterValue())
}
