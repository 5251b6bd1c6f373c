package definition

import (
	"github.com/aretw0/mealy"
)

// Machine is the machine type produced by Compile.
type Machine = mealy.Machine[string, struct{}, string]

// Compile validates d, builds the machine and starts it at d.Initial.
// The definition name is used as the machine name unless opts override it.
func Compile(d *Definition, opts ...mealy.Option) (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	opts = append([]mealy.Option{mealy.WithName(d.Name)}, opts...)
	m := mealy.New[string, struct{}, string](opts...)

	for _, s := range d.States {
		if err := m.RegisterState(s.ID); err != nil {
			return nil, err
		}
	}

	for _, s := range d.States {
		for _, t := range s.Transitions {
			if err := m.RegisterTransition(s.ID, t.To, guard(t), emit(t)); err != nil {
				return nil, err
			}
		}
	}

	if err := m.Start(d.Initial, struct{}{}); err != nil {
		return nil, err
	}
	return m, nil
}

func guard(t TransitionDef) mealy.Condition[string, struct{}] {
	if t.Any {
		return mealy.Always[string, struct{}]()
	}
	return mealy.OneOf[struct{}](t.On...)
}

func emit(t TransitionDef) mealy.Compute[string, struct{}, string] {
	if t.Output == "" {
		return mealy.Constant[string, struct{}](mealy.NoOutput[string]())
	}
	return mealy.Constant[string, struct{}](mealy.Emit(t.Output))
}
