/*
Package domain contains the non-generic vocabulary shared by the mealy engine and its adapters.

It defines the error taxonomy of the engine, the read-only introspection view of a machine and
the serializable form of a fired transition. The package is kept pure and free of I/O so that
presentation and observability packages can depend on it without pulling in the engine.

# Key Entities

  - StateInfo: one registered state as seen by introspection (id, outgoing targets, current marker).
  - TransitionRef: a pointer to one registered transition, used in diagnostics.
  - TransitionEvent: a fired transition flattened for logs and JSON output.
  - ConfigError / DeterminismError: the two distinguished failure types of the engine.
*/
package domain
