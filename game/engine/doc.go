// Package engine implements the core rules of the Virus! card game as a
// pure state machine: deck building, card resolution, turn order, forced
// timeouts and the victory condition. It performs no I/O and runs no
// goroutines; callers serialize access and drive the clock.
package engine
