// Package console renders section banners and tables for the demo commands.
// Output is plain text when stdout is not a terminal
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// MaxRows caps every rendered table
const MaxRows = 20

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D9FF"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3d3d5c"))
)

// Banner returns a "************ TITLE ***************" section header
func Banner(title string) string {
	return bannerStyle.Render("************ " + strings.ToUpper(title) + " ***************")
}

// Table renders headers and at most MaxRows rows
func Table(headers []string, rows [][]string) string {
	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// SideBySide joins two rendered blocks horizontally, top aligned
func SideBySide(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// Printer writes rendered blocks to w separated by blank lines
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter wraps w
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Section prints a banner
func (p *Printer) Section(title string) { p.println(Banner(title)) }

// Linef prints one formatted line
func (p *Printer) Linef(format string, a ...any) { p.println(fmt.Sprintf(format, a...)) }

// Block prints a rendered block followed by a blank line
func (p *Printer) Block(s string) { p.println(s + "\n") }

// Err returns the first write error, if any
func (p *Printer) Err() error { return p.err }

func (p *Printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
