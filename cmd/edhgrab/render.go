package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/edhgrab"
	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable returns a rounded-style table writing to w.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// renderCardDetails prints enriched card records as a table, in order.
func renderCardDetails(w io.Writer, details []*edhgrab.CardDetails) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Card", "Cost", "Type", "Price", "Set"})
	for _, d := range details {
		t.AppendRow(table.Row{d.Name, orNA(d.ManaCost), orNA(d.TypeLine), orNA(d.Price), formatSet(d.Set)})
	}
	t.Render()
}

// renderStatSections prints one table per stat section. When enriched
// records are supplied (keyed by the stat's card name), each row gains
// cost, type and price columns.
func renderStatSections(w io.Writer, stats *edhgrab.CommanderStats, byName map[string]*edhgrab.CardDetails) {
	for _, section := range stats.Sections {
		t := newTable(w)
		t.SetTitle(section.Name)
		if byName == nil {
			t.AppendHeader(table.Row{"Card", "Inclusion"})
		} else {
			t.AppendHeader(table.Row{"Card", "Inclusion", "Cost", "Type", "Price"})
		}
		for _, card := range section.Cards {
			if byName == nil {
				t.AppendRow(table.Row{card.Name, inclusionLabel(card)})
				continue
			}
			d := byName[card.Name]
			if d == nil {
				d = &edhgrab.CardDetails{Name: card.Name}
			}
			t.AppendRow(table.Row{card.Name, inclusionLabel(card), orNA(d.ManaCost), orNA(d.TypeLine), orNA(d.Price)})
		}
		t.Render()
		fmt.Fprintln(w)
	}
}

func inclusionLabel(card edhgrab.CardStat) string {
	if card.Label != "" {
		return card.Label
	}
	return fmt.Sprintf("%g%%", card.Inclusion)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatSet(set edhgrab.SetInfo) string {
	if set.Code == "" {
		return "N/A"
	}
	name := set.Name
	if name == "" {
		name = strings.ToUpper(set.Code)
	}
	if set.ReleaseYear > 0 {
		return fmt.Sprintf("%s (%d)", name, set.ReleaseYear)
	}
	return name
}
