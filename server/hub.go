package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/Jvjx01/2D-Aero-Tester/model"
	"github.com/Jvjx01/2D-Aero-Tester/solver"
	"github.com/Jvjx01/2D-Aero-Tester/store"
)

// Hub owns one websocket connection and routes its messages: requests come
// in on msg, replies go out on reply. The UI re-solves through here while
// the user drags the wind or angle sliders, so the loop stays hot.
type Hub struct {
	solver *solver.Solver
	tests  *store.Store
	conn   *websocket.Conn

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(sv *solver.Solver, tests *store.Store) *Hub {
	return &Hub{
		solver: sv,
		tests:  tests,
		msg:    make(chan model.Msg, 10),
		reply:  make(chan model.Msg, 10),
		done:   make(chan struct{}),
	}
}

func (h *Hub) close() {
	close(h.done)
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Errorf("ws write: %v", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "solve":
				h.reply <- h.solveMsg(msg, false)
			case "save":
				h.reply <- h.solveMsg(msg, true)
			case "list":
				h.reply <- h.listMsg()
			default:
				log.Warnf("no such message type: %q", msg.Type)
				h.reply <- errMsg("unknown message type " + msg.Type)
			}
		case <-h.done:
			return
		}
	}
}

// solveMsg runs one solve from a message payload; with persist it also
// stores the run and replies with the stored record.
func (h *Hub) solveMsg(msg model.Msg, persist bool) model.Msg {
	var req model.SolveRequest
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		return errMsg("malformed solve payload")
	}
	res, err := h.solver.Solve(req.Shape.Points, req.Parameters)
	if err != nil {
		return errMsg(err.Error())
	}
	if !persist {
		return dataMsg("result", res.Rounded())
	}

	rec, err := h.tests.Save(store.TestRecord{
		Name:       req.Name,
		Points:     req.Shape.Points,
		Parameters: req.Parameters,
		Result:     res.Rounded(),
	})
	if err != nil {
		log.Errorf("save test: %v", err)
		return errMsg("could not persist test")
	}
	return dataMsg("saved", rec)
}

func (h *Hub) listMsg() model.Msg {
	recs, err := h.tests.List(0)
	if err != nil {
		log.Errorf("list tests: %v", err)
		return errMsg("could not list tests")
	}
	return dataMsg("tests", store.Summarize(recs))
}

func dataMsg(typ string, v any) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal %s reply: %v", typ, err)
		return errMsg("internal error")
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errMsg(reason string) model.Msg {
	return model.Msg{Type: "error", Content: reason}
}
