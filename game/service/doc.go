// Package service exposes the application facade over running games. It
// translates transport calls into engine operations under each session's
// lock and pushes resulting state to connected clients.
package service
