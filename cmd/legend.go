package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var controls = []struct {
	key, action string
}{
	{"1", "quadrilateral"},
	{"2", "fan"},
	{"3", "pentagon"},
	{"4", "all shapes"},
	{"F1", "flat shading, constant color"},
	{"F2", "flat shading, uniform color"},
	{"F3", "per-vertex gradient"},
	{"F4", "each shape with its own shading"},
	{"Esc", "quit"},
}

// printLegend writes the control keys, colored when w is a color terminal.
func printLegend(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(out, out.String("Controls").Bold())
	for _, c := range controls {
		key := out.String(fmt.Sprintf("%-4s", c.key)).Foreground(out.Color("6"))
		fmt.Fprintf(out, "  %s %s\n", key, c.action)
	}
}
