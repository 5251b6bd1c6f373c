package tui

import (
	"fmt"
	"sort"
	"strings"

	"facette.io/natsort"
	"github.com/aretw0/mealy/pkg/domain"
)

// MarkdownTable renders introspected states as a markdown table, flagging the current one.
// Rows are in natural order, so "s2" comes before "s10".
func MarkdownTable(title string, states []domain.StateInfo) string {
	rows := make([]domain.StateInfo, len(states))
	copy(rows, states)
	sort.SliceStable(rows, func(i, j int) bool {
		return natsort.Compare(rows[i].ID, rows[j].ID)
	})

	var sb strings.Builder
	if title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", title)
	}
	sb.WriteString("| State | Transitions to | Current |\n")
	sb.WriteString("|---|---|---|\n")
	for _, s := range rows {
		targets := "_none_"
		if len(s.Targets) > 0 {
			targets = strings.Join(s.Targets, ", ")
		}
		current := ""
		if s.Current {
			current = "**yes**"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", escape(s.ID), escape(targets), current)
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
