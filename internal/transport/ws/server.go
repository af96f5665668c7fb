// Package ws exposes the planner as a websocket solve service. A client
// sends SOLVE messages (inline maze CSV plus algorithm/heuristic names) and
// receives one RESULT or ERROR per request; the connection stays open for
// further requests.
package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/persistence/runindex"
	"sokoplan.ai/internal/protocol"
	"sokoplan.ai/internal/search"
	"sokoplan.ai/internal/state"
)

// Recorder receives completed runs. Both the run index and the JSONL log
// satisfy it; nil recorders are skipped.
type Recorder interface {
	Record(r runindex.Run)
}

type Server struct {
	log     *log.Logger
	schemas *protocol.Schemas

	recorders []Recorder

	upgrader websocket.Upgrader
}

func NewServer(logger *log.Logger, schemas *protocol.Schemas, recorders ...Recorder) *Server {
	return &Server{
		log:       logger,
		schemas:   schemas,
		recorders: recorders,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(10 * time.Minute))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			s.handleMessage(conn, msg)
		}
	}
}

func (s *Server) handleMessage(conn *websocket.Conn, msg []byte) {
	base, err := protocol.DecodeBase(msg)
	if err != nil {
		s.writeError(conn, "", protocol.ErrProtoBadRequest, "malformed JSON")
		return
	}
	if base.Type != protocol.TypeSolve {
		s.writeError(conn, "", protocol.ErrProtoBadRequest, "expected SOLVE")
		return
	}
	if err := s.schemas.ValidateSolve(msg); err != nil {
		s.writeError(conn, "", protocol.ErrBadRequest, err.Error())
		return
	}

	var req protocol.SolveMsg
	if err := json.Unmarshal(msg, &req); err != nil {
		s.writeError(conn, "", protocol.ErrProtoBadRequest, "malformed SOLVE")
		return
	}
	if req.ProtocolVersion != protocol.Version {
		s.writeError(conn, req.RequestID, protocol.ErrProtoBadRequest, "bad protocol_version")
		return
	}

	m, start, err := maze.Parse(strings.NewReader(req.MazeCSV))
	if err != nil {
		s.writeError(conn, req.RequestID, protocol.ErrBadMaze, err.Error())
		return
	}

	var h heuristics.Func
	if req.Heuristic != "" {
		h, err = heuristics.ByName(req.Heuristic)
		if err != nil {
			s.writeError(conn, req.RequestID, protocol.ErrBadRequest, err.Error())
			return
		}
	}

	res, err := search.Run(m, state.Initial(start), req.Algorithm, h)
	switch {
	case errors.Is(err, search.ErrUnknownAlgorithm):
		s.writeError(conn, req.RequestID, protocol.ErrUnknownAlgorithm, err.Error())
		return
	case errors.Is(err, search.ErrHeuristicRequired):
		s.writeError(conn, req.RequestID, protocol.ErrHeuristicRequired, err.Error())
		return
	case err != nil:
		s.writeError(conn, req.RequestID, protocol.ErrInternal, err.Error())
		return
	}

	run := runindex.NewRun("", []byte(req.MazeCSV), req.Algorithm, req.Heuristic, res)
	for _, rec := range s.recorders {
		if rec != nil {
			rec.Record(run)
		}
	}
	s.log.Printf("solve algo=%s heuristic=%s success=%t plan=%d generated=%d expanded=%d",
		req.Algorithm, req.Heuristic, res.Success, res.PlanLength, res.StatesGenerated, res.StatesExpanded)

	out := protocol.ResultMsg{
		Type:            protocol.TypeResult,
		ProtocolVersion: protocol.Version,
		RequestID:       req.RequestID,
		RunID:           run.ID,
		Success:         res.Success,
		Plan:            res.Plan,
		PlanLength:      res.PlanLength,
		StatesGenerated: res.StatesGenerated,
		StatesExpanded:  res.StatesExpanded,
		TimeTakenMS:     res.TimeTaken.Milliseconds(),
	}
	if out.Plan == nil {
		out.Plan = []string{}
	}
	_ = writeJSON(conn, out)
}

func (s *Server) writeError(conn *websocket.Conn, requestID, code, message string) {
	_ = writeJSON(conn, protocol.ErrorMsg{
		Type:            protocol.TypeError,
		ProtocolVersion: protocol.Version,
		RequestID:       requestID,
		Code:            code,
		Message:         message,
	})
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
