package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fightboard/internal/combat"
	"fightboard/internal/eventlog"
	"fightboard/internal/observability"
	"fightboard/internal/render"
	"fightboard/internal/replay"
)

// roundRequest is the POST /rounds request body: a RoundInput plus the room
// the round belongs to, used only for rate-limiting grouping.
type roundRequest struct {
	Room  string            `json:"room"`
	Input combat.RoundInput `json:"input"`
}

// roundResponse is the POST /rounds response body.
type roundResponse struct {
	RoundID string             `json:"round_id"`
	Output  combat.RoundOutput `json:"output"`
}

func (h *routerHandlers) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	output := combat.ExecuteRound(req.Input, h.catalog, h.engineOpts)
	observability.RecordRound(time.Since(start), outcomeLabel(output))
	observability.RecordCasts(countCastEvents(output.Events))

	roundID := newRoundID()
	h.log.Store(req.Room, eventlog.Record{
		RoundID:     roundID,
		RoundNumber: req.Input.RoundNumber,
		Winner:      output.Winner,
		Draw:        output.Draw,
		Events:      output.Events,
	})
	h.boards.Put(roundID,
		combat.Board{Main: output.P1Main, Reserve: output.P1Reserve},
		combat.Board{Main: output.P2Main, Reserve: output.P2Reserve},
	)

	writeJSON(w, roundResponse{RoundID: roundID, Output: output})
}

func (h *routerHandlers) handleGetRound(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.log.Get(id)
	if !ok {
		writeError(w, "round not found", http.StatusNotFound)
		return
	}
	writeJSON(w, rec)
}

func (h *routerHandlers) handleGetReplay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.log.Get(id)
	if !ok {
		writeError(w, "round not found", http.StatusNotFound)
		return
	}

	env := replay.Envelope{
		RoundID:     rec.RoundID,
		RoundNumber: rec.RoundNumber,
		Winner:      rec.Winner,
		Draw:        rec.Draw,
		Events:      rec.Events,
	}
	data, err := replay.Encode(env)
	if err != nil {
		writeError(w, "failed to encode replay", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

func (h *routerHandlers) handleGetBoardPNG(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.log.Get(id)
	if !ok {
		writeError(w, "round not found", http.StatusNotFound)
		return
	}

	p1, p2 := h.boards.Lookup(rec.RoundID)
	png, err := render.Matchup(p1, p2, render.DefaultOptions())
	if err != nil {
		writeError(w, "failed to render board", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func newRoundID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func outcomeLabel(out combat.RoundOutput) string {
	if out.Draw {
		return "draw"
	}
	if out.Winner == nil {
		return "ongoing"
	}
	switch *out.Winner {
	case combat.SideP1:
		return "p1"
	case combat.SideP2:
		return "p2"
	default:
		return "p3"
	}
}

func countCastEvents(events []combat.Event) int {
	n := 0
	for _, e := range events {
		if e.Type == combat.EventCast {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("writeJSON encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
