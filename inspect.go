package mealy

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aretw0/mealy/pkg/domain"
)

// Inspect returns every registered state sorted by id, with its outgoing targets and a marker
// on the occupied one. It does not mutate the machine.
func (m *Machine[I, P, O]) Inspect() []domain.StateInfo {
	ids := m.States()
	slices.Sort(ids)

	infos := make([]domain.StateInfo, 0, len(ids))
	for _, id := range ids {
		ts := m.transitions[id]
		targets := make([]string, len(ts))
		for i, t := range ts {
			targets[i] = t.Target
		}
		infos = append(infos, domain.StateInfo{
			ID:      id,
			Targets: targets,
			Current: m.running && m.current.ID == id,
		})
	}
	return infos
}

// Dump writes a plain-text rendering of Inspect to w.
func (m *Machine[I, P, O]) Dump(w io.Writer) error {
	if m.name != "" {
		if _, err := fmt.Fprintf(w, "machine %s\n", m.name); err != nil {
			return err
		}
	}
	for _, info := range m.Inspect() {
		marker := " "
		if info.Current {
			marker = "*"
		}
		targets := "(none)"
		if len(info.Targets) > 0 {
			targets = strings.Join(info.Targets, ", ")
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s\n", marker, info.ID, targets); err != nil {
			return err
		}
	}
	return nil
}
