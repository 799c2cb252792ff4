package main

import (
	"testing"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

func TestSummarizeDeck_Base(t *testing.T) {
	s := summarizeDeck(engine.ModeBase)

	if s.Total != 68 {
		t.Errorf("Expected 68 cards, got %d", s.Total)
	}

	if s.ByKind[engine.KindOrgan] != 21 {
		t.Errorf("Expected 21 organs, got %d", s.ByKind[engine.KindOrgan])
	}

	var kindTotal int
	for _, n := range s.ByKind {
		kindTotal += n
	}
	if kindTotal != s.Total {
		t.Errorf("Kind counts sum to %d, expected %d", kindTotal, s.Total)
	}
}

func TestSummarizeDeck_Halloween(t *testing.T) {
	s := summarizeDeck(engine.ModeHalloween)

	if s.Total != 79 {
		t.Errorf("Expected 79 cards, got %d", s.Total)
	}

	if s.ByColor[engine.ColorOrange] == 0 {
		t.Error("Expected orange cards in the halloween deck")
	}
}

func TestSummarizeDeck_VirusMedicineBalance(t *testing.T) {
	s := summarizeDeck(engine.ModeBase)

	for _, color := range []engine.Color{engine.ColorRed, engine.ColorGreen, engine.ColorBlue, engine.ColorYellow} {
		if s.Viruses[color] == 0 {
			t.Errorf("Expected viruses for %s", color)
		}
		if s.Medicines[color] == 0 {
			t.Errorf("Expected medicines for %s", color)
		}
	}
}

func TestPrintSummary_NoPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("printSummary panicked: %v", r)
		}
	}()

	printSummary(summarizeDeck(engine.ModeHalloween))
}
