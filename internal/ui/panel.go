// Package ui lays out the parameter panel shown next to the GUI grid.
package ui

import (
	"fmt"
	"strings"
	"unicode"

	"cage/internal/core"
)

// Row is one line of the panel.
type Row struct {
	Text   string
	Header bool
}

// Title names the panel for a sim.
func Title(name string) string {
	if name == "" {
		return "Parameters"
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r) + " Parameters"
}

// Rows flattens a parameter snapshot into panel lines. Labels are padded so
// values line up within a group.
func Rows(snap core.ParameterSnapshot) []Row {
	var rows []Row
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		if g.Name != "" {
			rows = append(rows, Row{Text: g.Name, Header: true})
		}
		width := 0
		for _, p := range g.Params {
			width = max(width, len(label(p)))
		}
		for _, p := range g.Params {
			rows = append(rows, Row{Text: fmt.Sprintf("  %-*s %s", width, label(p), p.Value)})
		}
	}
	if len(rows) == 0 {
		rows = append(rows, Row{Text: "No parameters"})
	}
	return rows
}

// Status is the bottom line of the panel.
func Status(generation int, mode string) string {
	return strings.TrimSpace(fmt.Sprintf("t = %d  %s", generation, mode))
}

func label(p core.Parameter) string {
	if p.Label != "" {
		return p.Label
	}
	return p.Key
}
