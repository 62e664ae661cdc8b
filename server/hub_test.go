package server

import (
	"encoding/json"
	"testing"

	"github.com/Jvjx01/2D-Aero-Tester/model"
	"github.com/Jvjx01/2D-Aero-Tester/solver"
	"github.com/Jvjx01/2D-Aero-Tester/store"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	tests, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { tests.Close() })
	return NewHub(solver.NewSolver(solver.DefaultConfig()), tests)
}

func TestHubSolveMessage(t *testing.T) {
	h := testHub(t)
	reply := h.solveMsg(model.Msg{Type: "solve", Content: squareBody}, false)
	if reply.Type != "result" {
		t.Fatalf("reply type = %q (%s)", reply.Type, reply.Content)
	}
	var res solver.Result
	if err := json.Unmarshal([]byte(reply.Content), &res); err != nil {
		t.Fatal(err)
	}
	if res.Shape != solver.Rectangular {
		t.Fatalf("shapeType = %v, want rectangular", res.Shape)
	}
}

func TestHubSaveThenList(t *testing.T) {
	h := testHub(t)
	saved := h.solveMsg(model.Msg{Type: "save", Content: squareBody}, true)
	if saved.Type != "saved" {
		t.Fatalf("reply type = %q (%s)", saved.Type, saved.Content)
	}

	listed := h.listMsg()
	if listed.Type != "tests" {
		t.Fatalf("reply type = %q (%s)", listed.Type, listed.Content)
	}
	var sums []store.Summary
	if err := json.Unmarshal([]byte(listed.Content), &sums); err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 {
		t.Fatalf("listed %d tests, want 1", len(sums))
	}
}

func TestHubRejectsMalformedPayload(t *testing.T) {
	h := testHub(t)
	reply := h.solveMsg(model.Msg{Type: "solve", Content: "{"}, false)
	if reply.Type != "error" {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}
}
