// Package session owns the registry of running games and their wall-clock
// behavior: per-turn deadlines that force a random discard and an inactivity
// watchdog that ends abandoned matches.
package session
