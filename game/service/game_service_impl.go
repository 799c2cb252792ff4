package service

import (
	"context"
	"errors"

	log "github.com/inconshreveable/log15/v3"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
	"github.com/raulmoralesruiz/virus-backend/game/session"
)

type gameService struct {
	mgr *session.Manager
	dir PlayerDirectory
	bc  Broadcaster
	log log.Logger
}

// NewGameService wires the facade over the session registry. The manager's
// timeout and expiry hooks are claimed here so forced actions reach clients.
func NewGameService(mgr *session.Manager, dir PlayerDirectory, bc Broadcaster, logger log.Logger) GameService {
	if logger == nil {
		logger = log.New()
	}
	s := &gameService{mgr: mgr, dir: dir, bc: bc, log: logger}
	mgr.OnTimeout = s.afterForcedAction
	mgr.OnExpired = s.afterExpiry
	return s
}

// guard converts a panic below the service boundary into ErrServer so one
// bad request cannot take the process down.
func (s *gameService) guard(op, roomID string, errp *error) {
	if r := recover(); r != nil {
		s.log.Error("panic in game operation", "op", op, "room", roomID, "panic", r)
		*errp = engine.ErrServer
	}
}

func (s *gameService) StartSession(ctx context.Context, roomID string, opts StartOptions) (st engine.PublicState, err error) {
	defer s.guard("start_session", roomID, &err)
	players, err := s.dir.RoomPlayers(roomID)
	if err != nil {
		return engine.PublicState{}, err
	}
	g, err := engine.NewGame(roomID, players, engine.Config{
		Mode:        opts.Mode,
		TurnSeconds: opts.TurnSeconds,
		Seed:        opts.Seed,
	})
	if err != nil {
		return engine.PublicState{}, err
	}
	st = g.Public()
	hands := allHands(g)
	if _, err := s.mgr.Create(roomID, g); err != nil {
		return engine.PublicState{}, err
	}
	s.log.Info("game started", "room", roomID, "mode", g.Mode, "turn_seconds", g.TurnSeconds)

	s.pushSnapshot(roomID, st, hands, false)
	return st, nil
}

func (s *gameService) PlayCard(ctx context.Context, roomID, playerID, cardID string, target engine.Target) (st engine.PublicState, err error) {
	defer s.guard("play_card", roomID, &err)
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return engine.PublicState{}, engine.ErrGameNotFound
	}
	var hands map[string][]engine.Card
	var ended bool
	err = sess.Do(func(g *engine.Game) error {
		if err := g.PlayCard(playerID, cardID, target); err != nil {
			return err
		}
		st = g.Public()
		hands = allHands(g)
		ended = g.Finished
		return nil
	})
	if err != nil {
		return engine.PublicState{}, err
	}
	s.pushSnapshot(roomID, st, hands, ended)
	return st, nil
}

func (s *gameService) DrawCard(ctx context.Context, roomID, playerID string) (hand []engine.Card, err error) {
	defer s.guard("draw_card", roomID, &err)
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return nil, engine.ErrGameNotFound
	}
	var st engine.PublicState
	err = sess.Do(func(g *engine.Game) error {
		if err := g.DrawCard(playerID); err != nil {
			return err
		}
		hand, _ = g.Hand(playerID)
		st = g.Public()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.bc != nil {
		s.bc.BroadcastState(roomID, st)
		s.bc.SendHand(roomID, playerID, hand)
	}
	return hand, nil
}

func (s *gameService) DiscardCards(ctx context.Context, roomID, playerID string, cardIDs []string) (st engine.PublicState, err error) {
	defer s.guard("discard_cards", roomID, &err)
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return engine.PublicState{}, engine.ErrGameNotFound
	}
	var hands map[string][]engine.Card
	err = sess.Do(func(g *engine.Game) error {
		if err := g.DiscardCards(playerID, cardIDs); err != nil {
			return err
		}
		st = g.Public()
		hands = allHands(g)
		return nil
	})
	if err != nil {
		return engine.PublicState{}, err
	}
	s.pushSnapshot(roomID, st, hands, false)
	return st, nil
}

func (s *gameService) GetPublicState(ctx context.Context, roomID string) (engine.PublicState, error) {
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return engine.PublicState{}, engine.ErrGameNotFound
	}
	var st engine.PublicState
	if err := sess.View(func(g *engine.Game) { st = g.Public() }); err != nil {
		return engine.PublicState{}, engine.ErrGameNotFound
	}
	return st, nil
}

func (s *gameService) GetPrivateHand(ctx context.Context, roomID, playerID string) ([]engine.Card, error) {
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return nil, engine.ErrGameNotFound
	}
	var hand []engine.Card
	var herr error
	if err := sess.View(func(g *engine.Game) { hand, herr = g.Hand(playerID) }); err != nil {
		return nil, engine.ErrGameNotFound
	}
	return hand, herr
}

func (s *gameService) EndSession(ctx context.Context, roomID string) (err error) {
	defer s.guard("end_session", roomID, &err)
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return engine.ErrGameNotFound
	}
	var st engine.PublicState
	_ = sess.Do(func(g *engine.Game) error {
		g.Abort("room closed")
		st = g.Public()
		return nil
	})
	if err := s.mgr.Delete(roomID); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return err
	}
	if s.bc != nil {
		s.bc.NotifyGameEnded(roomID, st)
	}
	return nil
}

func (s *gameService) ListSessions(ctx context.Context) ([]string, error) {
	return s.mgr.List(), nil
}

// afterForcedAction broadcasts the state produced by a turn timeout.
func (s *gameService) afterForcedAction(roomID string) {
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return
	}
	var st engine.PublicState
	var hands map[string][]engine.Card
	if err := sess.View(func(g *engine.Game) {
		st = g.Public()
		hands = allHands(g)
	}); err != nil {
		return
	}
	s.pushSnapshot(roomID, st, hands, false)
}

// afterExpiry broadcasts the end of an abandoned match and drops it.
func (s *gameService) afterExpiry(roomID string) {
	sess, err := s.mgr.Get(roomID)
	if err != nil {
		return
	}
	var st engine.PublicState
	if err := sess.View(func(g *engine.Game) { st = g.Public() }); err != nil {
		return
	}
	_ = s.mgr.Delete(roomID)
	if s.bc != nil {
		s.bc.NotifyGameEnded(roomID, st)
	}
}

func (s *gameService) pushSnapshot(roomID string, st engine.PublicState, hands map[string][]engine.Card, ended bool) {
	if s.bc == nil {
		return
	}
	s.bc.BroadcastState(roomID, st)
	for pid, hand := range hands {
		s.bc.SendHand(roomID, pid, hand)
	}
	if ended {
		s.bc.NotifyGameEnded(roomID, st)
	}
}

func allHands(g *engine.Game) map[string][]engine.Card {
	hands := make(map[string][]engine.Card, len(g.Players))
	for _, p := range g.Players {
		hands[p.ID] = append([]engine.Card{}, p.Hand...)
	}
	return hands
}
