package validator

import (
	"testing"

	"github.com/aretw0/mealy/pkg/definition"
	"github.com/stretchr/testify/assert"
)

func TestUnreachable(t *testing.T) {
	tests := []struct {
		name string
		def  *definition.Definition
		want []string
	}{
		{
			name: "All Reachable",
			def: &definition.Definition{
				Initial: "a",
				States: []definition.StateDef{
					{ID: "a", Transitions: []definition.TransitionDef{{On: []string{"x"}, To: "b"}}},
					{ID: "b", Transitions: []definition.TransitionDef{{On: []string{"x"}, To: "a"}}},
				},
			},
		},
		{
			name: "Island And Orphan",
			def: &definition.Definition{
				Initial: "a",
				States: []definition.StateDef{
					{ID: "a", Transitions: []definition.TransitionDef{{Any: true, To: "a"}}},
					{ID: "z", Transitions: []definition.TransitionDef{{On: []string{"x"}, To: "y"}}},
					{ID: "y", Transitions: []definition.TransitionDef{{On: []string{"x"}, To: "z"}}},
					{ID: "orphan"},
				},
			},
			want: []string{"orphan", "y", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unreachable(tt.def))
		})
	}
}
