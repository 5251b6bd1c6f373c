package validator

import (
	"sort"

	"github.com/aretw0/mealy/pkg/definition"
)

// Unreachable crawls the definition from its initial state and returns the declared states
// that no sequence of inputs can reach, sorted. Dangling targets are not reported here:
// definition.Validate already rejects them.
func Unreachable(def *definition.Definition) []string {
	edges := make(map[string][]string, len(def.States))
	for _, s := range def.States {
		for _, t := range s.Transitions {
			edges[s.ID] = append(edges[s.ID], t.To)
		}
	}

	visited := make(map[string]bool)
	queue := []string{def.Initial}

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		for _, target := range edges[currentID] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	var unreachable []string
	for _, s := range def.States {
		if !visited[s.ID] {
			unreachable = append(unreachable, s.ID)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}
