package engine

// VictoryOrganCount is how many distinct-colored healthy organs win a game.
const VictoryOrganCount = 4

// checkVictory returns the first player holding four healthy organs of
// distinct colors. The multi and orange organs each count as a color of
// their own. Immune and vaccinated organs are healthy.
func (g *Game) checkVictory() *PlayerState {
	for _, p := range g.Players {
		colors := map[Color]bool{}
		for _, s := range p.Board {
			if s.IsHealthy() {
				colors[s.Organ.Color] = true
			}
		}
		if len(colors) >= VictoryOrganCount {
			return p
		}
	}
	return nil
}
