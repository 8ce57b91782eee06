package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/snapops"
)

// Reports are printed one per line, with the level coloured the way the
// editor's status bar would show it.
type reporter struct {
	out io.Writer
	au  aurora.Aurora
}

func newReporter(out io.Writer, color bool) *reporter {
	return &reporter{out: out, au: aurora.NewAurora(color)}
}

func (r *reporter) level(l snapops.Level) aurora.Value {
	switch l {
	case snapops.Warning:
		return r.au.Yellow(l)
	case snapops.Error:
		return r.au.Red(l)
	}
	return r.au.Cyan(l)
}

func (r *reporter) result(label string, result snapops.Result) {
	for _, report := range result.Reports {
		fmt.Fprintf(r.out, "%s: %s\n", r.level(report.Level), report.Message)
	}
	status := r.au.Green(result.Status)
	if result.Status != snapops.Finished {
		status = r.au.Red(result.Status)
	}
	fmt.Fprintf(r.out, "%s %s\n", r.au.Bold(label), status)
}

func (r *reporter) enabled(cmd snapops.Command, enabled bool) {
	state := r.au.Green("enabled")
	if !enabled {
		state = r.au.Faint("disabled")
	}
	fmt.Fprintf(r.out, "%-40s %-24s %s\n", cmd.ID(), cmd.Label(), state)
}
