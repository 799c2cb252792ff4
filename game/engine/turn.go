package engine

import "time"

// startTurn stamps the wall-clock window of the current turn.
func (g *Game) startTurn() {
	g.TurnStart = g.now()
	g.TurnDeadline = g.TurnStart.Add(time.Duration(g.TurnSeconds) * time.Second)
}

// AdvanceTurn moves play to the next player. Players flagged to skip are
// passed over once: the flag is cleared, their hand topped up, and the turn
// moves on. Any open pending decision dies with the turn.
func (g *Game) AdvanceTurn() {
	if g.Finished {
		return
	}
	g.Pending = nil
	for range g.Players {
		g.TurnIndex = (g.TurnIndex + 1) % len(g.Players)
		next := g.Players[g.TurnIndex]
		if !next.SkipNextTurn {
			break
		}
		next.SkipNextTurn = false
		g.refillHand(next)
		g.pushHistory("%s skips this turn", next.Name)
	}
	g.startTurn()
}

// ForceTimeout is called when the turn deadline passes without an action.
// The current player loses one random card, refills and the turn advances.
func (g *Game) ForceTimeout() {
	if g.Finished {
		return
	}
	p := g.CurrentPlayer()
	if len(p.Hand) > 0 {
		i := g.rng.Intn(len(p.Hand))
		c := removeHand(p, i)
		g.Discard = append(g.Discard, c)
		g.pushHistory("%s ran out of time and lost a %s", p.Name, c.Label())
	} else {
		g.pushHistory("%s ran out of time", p.Name)
	}
	g.refillHand(p)
	g.LastAction = g.now()
	g.AdvanceTurn()
}
