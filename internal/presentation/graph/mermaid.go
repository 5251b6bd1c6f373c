package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/mealy/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
	InitialState  string
}

// GenerateMermaid produces a Mermaid flowchart from introspected states.
// Parallel edges to the same target are collapsed into one arrow labelled with their count.
// If overlay is nil, the current state reported by the states themselves is highlighted.
func GenerateMermaid(states []domain.StateInfo, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if overlay == nil {
		overlay = &GraphOverlay{}
		for _, s := range states {
			if s.Current {
				overlay.CurrentState = s.ID
			}
		}
	}

	for _, s := range states {
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "[", "]"
		switch {
		case s.ID == overlay.InitialState:
			opener, closer = "((", "))" // Circle
		case len(s.Targets) == 0:
			opener, closer = "[[", "]]" // Sink
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, s.ID, closer)

		counts := make(map[string]int)
		var order []string
		for _, target := range s.Targets {
			if counts[target] == 0 {
				order = append(order, target)
			}
			counts[target]++
		}
		for _, target := range order {
			arrow := "-->"
			if n := counts[target]; n > 1 {
				arrow = fmt.Sprintf("-- \"x%d\" -->", n)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(target))
		}
	}

	if len(overlay.VisitedStates) > 0 || overlay.CurrentState != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
