package engine

import "sort"

// popDeck takes the top card of the draw pile, recycling the discard first
// when the pile is empty. Returns false when no card can be produced.
func (g *Game) popDeck() (Card, bool) {
	if len(g.Deck) == 0 {
		g.recycleDiscard()
	}
	if len(g.Deck) == 0 {
		return Card{}, false
	}
	c := g.Deck[len(g.Deck)-1]
	g.Deck = g.Deck[:len(g.Deck)-1]
	return c, true
}

// recycleDiscard shuffles the discard back into the draw pile. The topmost
// discard stays behind as the visible last-played marker unless it is the
// only card left.
func (g *Game) recycleDiscard() {
	switch n := len(g.Discard); {
	case n == 0:
		return
	case n == 1:
		g.Deck = append(g.Deck, g.Discard[0])
		g.Discard = nil
	default:
		g.Deck = append(g.Deck, g.Discard[:n-1]...)
		g.Discard = []Card{g.Discard[n-1]}
		g.rng.Shuffle(len(g.Deck), func(i, j int) {
			g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
		})
	}
	g.pushHistory("the discard pile was shuffled back into the deck")
}

// drawInto moves one card from the pile into the hand if there is room and a
// card to give.
func (g *Game) drawInto(p *PlayerState) bool {
	if len(p.Hand) >= HandLimit {
		return false
	}
	c, ok := g.popDeck()
	if !ok {
		return false
	}
	p.Hand = append(p.Hand, c)
	return true
}

// refillHand draws until the hand is full or the piles run dry.
func (g *Game) refillHand(p *PlayerState) {
	for len(p.Hand) < HandLimit {
		if !g.drawInto(p) {
			return
		}
	}
}

// DrawCard lets the current player draw one card without ending the turn.
func (g *Game) DrawCard(playerID string) error {
	if g.Finished {
		return ErrInvalidAction
	}
	p := g.player(playerID)
	if p == nil {
		return ErrNoPlayer
	}
	if g.CurrentPlayer().ID != playerID {
		return ErrNotYourTurn
	}
	if len(p.Hand) >= HandLimit {
		return ErrHandLimitReached
	}
	if !g.drawInto(p) {
		return ErrNoCardsLeft
	}
	g.LastAction = g.now()
	return nil
}

// DiscardCards throws away one to three cards from the current player's
// hand, refills it and ends the turn. While an apparition decision is
// pending the pending card must be among the discards.
func (g *Game) DiscardCards(playerID string, cardIDs []string) error {
	if g.Finished {
		return ErrInvalidAction
	}
	p := g.player(playerID)
	if p == nil {
		return ErrNoPlayer
	}
	if g.CurrentPlayer().ID != playerID {
		return ErrNotYourTurn
	}
	if len(cardIDs) < 1 || len(cardIDs) > HandLimit {
		return ErrInvalidAction
	}
	if g.Pending != nil {
		found := false
		for _, id := range cardIDs {
			if id == g.Pending.CardID {
				found = true
			}
		}
		if !found {
			return ErrInvalidAction
		}
	}

	seen := map[string]bool{}
	idxs := make([]int, 0, len(cardIDs))
	for _, id := range cardIDs {
		if seen[id] {
			return ErrInvalidAction
		}
		seen[id] = true
		i := handIndex(p, id)
		if i < 0 {
			return ErrNoCard
		}
		idxs = append(idxs, i)
	}

	// Remove back to front so earlier indexes stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
	for _, i := range idxs {
		g.Discard = append(g.Discard, removeHand(p, i))
	}

	g.pushHistory("%s discarded %d card(s)", p.Name, len(cardIDs))
	g.refillHand(p)
	g.LastAction = g.now()
	g.AdvanceTurn()
	return nil
}
