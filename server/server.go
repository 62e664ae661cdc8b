// Package server is the thin backend boundary: one solve route, CRUD on
// persisted tests and a websocket channel for live re-solving while the
// user drags parameters.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Jvjx01/2D-Aero-Tester/model"
	"github.com/Jvjx01/2D-Aero-Tester/solver"
	"github.com/Jvjx01/2D-Aero-Tester/store"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	solver   *solver.Solver
	tests    *store.Store
}

func NewServer(addr string, upgrader websocket.Upgrader, sv *solver.Solver, tests *store.Store) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		solver:   sv,
		tests:    tests,
	}
}

// Handler wires up the route table. Split from Serve so tests can drive
// the handlers without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("POST /api/tests", s.handleCreateTest)
	mux.HandleFunc("GET /api/tests", s.handleListTests)
	mux.HandleFunc("GET /api/tests/{id}", s.handleGetTest)
	mux.HandleFunc("DELETE /api/tests/{id}", s.handleDeleteTest)
	mux.HandleFunc("/ws", s.serveWs)
	return cors(mux)
}

func (s *Server) Serve() error {
	log.Infof("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// cors lets the separately served drawing UI talk to us.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req model.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	res, err := s.solver.Solve(req.Shape.Points, req.Parameters)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Rounded())
}

func (s *Server) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var req model.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	res, err := s.solver.Solve(req.Shape.Points, req.Parameters)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	rec, err := s.tests.Save(store.TestRecord{
		Name:       req.Name,
		Points:     req.Shape.Points,
		Parameters: req.Parameters,
		Result:     res.Rounded(),
	})
	if err != nil {
		log.Errorf("save test: %v", err)
		writeError(w, http.StatusInternalServerError, "could not persist test")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListTests(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	recs, err := s.tests.List(limit)
	if err != nil {
		log.Errorf("list tests: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list tests")
		return
	}
	writeJSON(w, http.StatusOK, store.Summarize(recs))
}

func (s *Server) handleGetTest(w http.ResponseWriter, r *http.Request) {
	rec, err := s.tests.Get(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "test not found")
		return
	}
	if err != nil {
		log.Errorf("get test: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load test")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	err := s.tests.Delete(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "test not found")
		return
	}
	if err != nil {
		log.Errorf("delete test: %v", err)
		writeError(w, http.StatusInternalServerError, "could not delete test")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveWs handles websocket requests from the drawing UI.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.solver, s.tests)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer hub.close()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debugf("ws read: %v", err)
			return
		}
		hub.msg <- msg
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, model.ErrorReply{Error: msg})
}

// writeSolveError maps solver failures onto the wire: invalid input is the
// caller's fault, anything else is ours.
func writeSolveError(w http.ResponseWriter, err error) {
	var invalid *solver.InvalidInputError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}
	log.Errorf("solve: %v", err)
	writeError(w, http.StatusInternalServerError, "solve failed")
}
