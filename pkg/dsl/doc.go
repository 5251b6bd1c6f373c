/*
Package dsl provides a fluent Go builder for mealy machine definitions.

It produces the same *definition.Definition as a YAML file, which is handy for tests and for
machines generated at run time.

Example usage:

	b := dsl.New("door").Initial("closed")

	b.Add("closed").
		On("push").Emit("creak").Go("open")

	b.Add("open").
		On("pull", "slam").Go("closed")

	m, err := b.Compile()
	if err != nil {
		log.Fatal(err)
	}
	_ = m.Step("push")
*/
package dsl
