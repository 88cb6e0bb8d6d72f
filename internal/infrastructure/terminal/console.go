// Package terminal runs the tracker as an interactive line-oriented console
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/damon-houk/expense-tracker/internal/application/service"
	"github.com/damon-houk/expense-tracker/internal/domain/entity"
	"github.com/damon-houk/expense-tracker/internal/infrastructure/view"
)

const helpText = `Commands:
  add <amount> <category>   record a transaction
  undo <position>...        remove the transaction at the first position
  filter amount             filter by an exact amount
  filter category           filter by an exact category
  apply                     re-apply the active filter
  list                      show the table
  help                      show this help
  quit                      exit
`

// Console is a display that prints the transaction table to a writer and
// reads prompts and commands from a reader
type Console struct {
	table *view.TableView
	in    *bufio.Scanner
	out   io.Writer
}

// NewConsole creates a console over in and out
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
	c.table = view.NewTableView(c)
	return c
}

// AppendRow records the new row; the following refresh prints the table
func (c *Console) AppendRow(amount float64, category, timestamp string) {
	c.table.AppendRow(amount, category, timestamp)
}

// RefreshTable replaces the rows and prints the table
func (c *Console) RefreshTable(transactions []*entity.Transaction) {
	c.table.RefreshTable(transactions)
	c.render()
}

// HighlightRows marks rows and prints the table
func (c *Console) HighlightRows(positions []int) {
	c.table.HighlightRows(positions)
	c.render()
}

// Notify prints a message
func (c *Console) Notify(message string) {
	fmt.Fprintf(c.out, "! %s\n", message)
}

// PromptForCategoryFilterText reads a category from the input
func (c *Console) PromptForCategoryFilterText() string {
	return c.table.PromptForCategoryFilterText()
}

// PromptForAmountFilterValue reads an amount from the input
func (c *Console) PromptForAmountFilterValue() float64 {
	return c.table.PromptForAmountFilterValue()
}

// CategoryFilterText implements view.Prompter
func (c *Console) CategoryFilterText() string {
	return strings.TrimSpace(c.prompt("Enter Category Filter: "))
}

// AmountFilterValue implements view.Prompter. Malformed input reads as 0.
func (c *Console) AmountFilterValue() float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(c.prompt("Enter Amount Filter: ")), 64)
	if err != nil {
		return 0
	}
	return amount
}

func (c *Console) prompt(label string) string {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return ""
	}
	return c.in.Text()
}

// render prints the table with a trailing total row. Highlighted rows are
// marked with an asterisk.
func (c *Console) render() {
	table := c.table.Table()
	highlighted := make(map[int]bool, len(table.Highlighted))
	for _, pos := range table.Highlighted {
		highlighted[pos] = true
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\t#\tAmount\tCategory\tDate")
	for i, row := range table.Rows {
		mark := " "
		if highlighted[i] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%s\n", mark, row.Serial, row.Amount, row.Category, row.Timestamp)
	}
	fmt.Fprintf(tw, " \t%s\t\t\t%.2f\n", view.TotalLabel, table.Total)
	tw.Flush()
}

// Run reads commands until quit or end of input
func (c *Console) Run(ctx context.Context, svc *service.TrackerService) error {
	fmt.Fprint(c.out, helpText)

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}

		fields := strings.Fields(c.in.Text())
		if len(fields) == 0 {
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := c.dispatch(ctx, svc, fields)
		if err != nil && !entity.IsDomainError(err) {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (c *Console) dispatch(ctx context.Context, svc *service.TrackerService, fields []string) (bool, error) {
	switch fields[0] {
	case "add":
		if len(fields) < 3 {
			c.Notify("usage: add <amount> <category>")
			return false, nil
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			c.Notify("The amount is not valid.")
			return false, nil
		}
		ok, err := svc.AddTransaction(ctx, amount, strings.Join(fields[2:], " "))
		if err == nil && !ok {
			c.Notify("Invalid amount or category entered")
		}
		return false, err

	case "undo":
		positions := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			pos, err := strconv.Atoi(f)
			if err != nil {
				c.Notify(fmt.Sprintf("invalid position %q", f))
				return false, nil
			}
			// rows are shown numbered from 1
			positions = append(positions, pos-1)
		}
		return false, svc.RemoveTransaction(ctx, positions)

	case "filter":
		if len(fields) < 2 {
			c.Notify("usage: filter amount|category")
			return false, nil
		}
		var err error
		switch fields[1] {
		case "amount":
			_, err = svc.FilterByAmount(ctx)
		case "category":
			_, err = svc.FilterByCategory(ctx)
		default:
			c.Notify("usage: filter amount|category")
		}
		return false, err

	case "apply":
		_, err := svc.ApplyFilter(ctx)
		return false, err

	case "list":
		return false, svc.Refresh(ctx)

	case "help":
		fmt.Fprint(c.out, helpText)
		return false, nil

	case "quit", "exit":
		return true, nil

	default:
		c.Notify(fmt.Sprintf("unknown command %q, type help", fields[0]))
		return false, nil
	}
}
