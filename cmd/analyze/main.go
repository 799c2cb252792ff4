// Command analyze prints quick, human-readable heuristics about the deck
// composition of each game mode. It summarizes card counts per kind and per
// color, the virus/medicine balance, and highlights colors where attacks
// outnumber cures.
package main

import (
	"fmt"
	"sort"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

// DeckSummary aggregates the composition of one mode's deck.
type DeckSummary struct {
	Mode      engine.Mode
	Total     int
	ByKind    map[engine.Kind]int
	ByColor   map[engine.Color]int
	Viruses   map[engine.Color]int
	Medicines map[engine.Color]int
}

func main() {
	for _, mode := range []engine.Mode{engine.ModeBase, engine.ModeHalloween} {
		fmt.Printf("\n=== Analyzing %s deck ===\n", mode)
		printSummary(summarizeDeck(mode))
	}
}

// summarizeDeck builds a DeckSummary from a freshly built deck.
func summarizeDeck(mode engine.Mode) DeckSummary {
	summary := DeckSummary{
		Mode:      mode,
		ByKind:    map[engine.Kind]int{},
		ByColor:   map[engine.Color]int{},
		Viruses:   map[engine.Color]int{},
		Medicines: map[engine.Color]int{},
	}

	for _, card := range engine.BuildDeck(mode) {
		summary.Total++
		summary.ByKind[card.Kind]++
		summary.ByColor[card.Color]++
		switch card.Kind {
		case engine.KindVirus:
			summary.Viruses[card.Color]++
		case engine.KindMedicine:
			summary.Medicines[card.Color]++
		}
	}

	return summary
}

func printSummary(s DeckSummary) {
	fmt.Printf("Total cards: %d\n", s.Total)

	fmt.Println("By kind:")
	for _, kind := range []engine.Kind{engine.KindOrgan, engine.KindVirus, engine.KindMedicine, engine.KindTreatment} {
		fmt.Printf("  %-10s %d\n", kind, s.ByKind[kind])
	}

	fmt.Println("By color:")
	for _, color := range sortedColors(s.ByColor) {
		fmt.Printf("  %-10s %d\n", color, s.ByColor[color])
	}

	// Balance check: a color with more viruses than medicines in the deck is
	// harder to keep healthy.
	unbalanced := 0
	for _, color := range sortedColors(s.Viruses) {
		v, m := s.Viruses[color], s.Medicines[color]
		if v > m {
			fmt.Printf("⚠️  %s: %d viruses vs %d medicines\n", color, v, m)
			unbalanced++
		}
	}
	if unbalanced == 0 {
		fmt.Println("✅ Every color has at least as many medicines as viruses")
	}
}

func sortedColors(m map[engine.Color]int) []engine.Color {
	colors := make([]engine.Color, 0, len(m))
	for c := range m {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })
	return colors
}
