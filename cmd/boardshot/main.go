// Command boardshot renders a board-visualization PNG from a RoundOutput
// JSON file on disk, for quick manual inspection without standing up
// cmd/roundserver.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"fightboard/internal/combat"
	"fightboard/internal/render"
)

func main() {
	inPath := flag.String("in", "", "path to a RoundOutput JSON file")
	outPath := flag.String("out", "board.png", "path to write the rendered PNG")
	flag.Parse()

	if *inPath == "" {
		log.Fatal("boardshot: -in is required")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("boardshot: read input: %v", err)
	}

	var out combat.RoundOutput
	if err := json.Unmarshal(data, &out); err != nil {
		log.Fatalf("boardshot: decode RoundOutput: %v", err)
	}

	p1 := combat.Board{Main: out.P1Main, Reserve: out.P1Reserve}
	p2 := combat.Board{Main: out.P2Main, Reserve: out.P2Reserve}

	png, err := render.Matchup(p1, p2, render.DefaultOptions())
	if err != nil {
		log.Fatalf("boardshot: render: %v", err)
	}

	if err := os.WriteFile(*outPath, png, 0644); err != nil {
		log.Fatalf("boardshot: write output: %v", err)
	}

	log.Printf("wrote %s", *outPath)
}
