package api

import (
	"net/http"
	"testing"
)

func TestNewWebSocketHubStartsWithNoClients(t *testing.T) {
	h := NewWebSocketHub()
	if got := h.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0 for a fresh hub", got)
	}
}

func TestHandleRoundStreamUnknownIDReturns404(t *testing.T) {
	ts := testRouter(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rounds/does-not-exist/stream")
	if err != nil {
		t.Fatalf("GET /rounds/{id}/stream: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
