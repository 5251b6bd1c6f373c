/*
Package definition loads declarative Mealy machines over string alphabets from YAML.

A definition lists states and, per state, transitions keyed by the input literals they accept.
Compile validates the definition and turns it into a running *mealy.Machine.

	name: door
	initial: closed
	states:
	  - id: closed
	    transitions:
	      - on: push
	        to: open
	        output: creak
	  - id: open
	    transitions:
	      - on: [pull, slam]
	        to: closed

`on` accepts a single literal or a list. `any: true` matches every input and must be the only
transition of its state.
*/
package definition
