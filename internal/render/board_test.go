package render

import (
	"bytes"
	"image/png"
	"testing"

	"fightboard/internal/combat"
)

func sampleBoard() combat.Board {
	var b combat.Board
	b.Main[0] = combat.Tile{HeroID: "pyromancer", CurrentHealth: 8, BaseHealthSnapshot: 10}
	b.Main[4] = combat.Tile{HeroID: "brute", CurrentHealth: 0, Dead: true, BaseHealthSnapshot: 12}
	b.Reserve[0] = combat.Tile{HeroID: "healer", CurrentHealth: 5, BaseHealthSnapshot: 5}
	return b
}

func TestBoardProducesDecodablePNGOfRequestedSize(t *testing.T) {
	opts := DefaultOptions()
	data, err := Board(sampleBoard(), "P1", opts)
	if err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Board returned an empty byte slice")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != opts.Width || bounds.Dy() != opts.Height {
		t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), opts.Width, opts.Height)
	}
}

func TestBoardHandlesEmptyBoard(t *testing.T) {
	var empty combat.Board
	data, err := Board(empty, "P2", DefaultOptions())
	if err != nil {
		t.Fatalf("Board on an empty board: %v", err)
	}
	if len(data) == 0 {
		t.Error("Board on an empty board returned no bytes")
	}
}

func TestMatchupStacksBothSidesAndDoublesHeight(t *testing.T) {
	opts := DefaultOptions()
	data, err := Matchup(sampleBoard(), sampleBoard(), opts)
	if err != nil {
		t.Fatalf("Matchup: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	bounds := img.Bounds()
	wantHeight := opts.Height*2 + 40
	if bounds.Dx() != opts.Width || bounds.Dy() != wantHeight {
		t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), opts.Width, wantHeight)
	}
}
