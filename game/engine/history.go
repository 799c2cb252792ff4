package engine

import "fmt"

// pushHistory prepends a formatted entry so clients render newest first.
func (g *Game) pushHistory(format string, args ...interface{}) {
	g.History = append([]string{fmt.Sprintf(format, args...)}, g.History...)
	if len(g.History) > HistoryLimit {
		g.History = g.History[:HistoryLimit]
	}
}
