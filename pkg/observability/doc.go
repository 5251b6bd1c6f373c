/*
Package observability provides ready-made observers for the mealy engine.

A machine holds a single observer. Fanout lets several of them (metrics, logging, tracing)
share that slot.
*/
package observability
