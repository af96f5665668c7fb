// probe is a small client for the solve service: it reads a maze file,
// sends one SOLVE request, and prints the outcome.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/gorilla/websocket"

	"sokoplan.ai/internal/protocol"
)

func main() {
	var (
		url       = flag.String("url", "ws://localhost:8080/v1/solve", "ws url")
		mazePath  = flag.String("maze", "", "path to maze CSV")
		algorithm = flag.String("algorithm", "bfs", "bfs, greedy, astar or ehc")
		heuristic = flag.String("heuristic", "", "manhattan or euclidean")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[probe] ", log.LstdFlags|log.Lmicroseconds)
	if *mazePath == "" {
		logger.Fatalf("-maze is required")
	}
	raw, err := os.ReadFile(*mazePath)
	if err != nil {
		logger.Fatalf("read maze: %v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		logger.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	req := protocol.SolveMsg{
		Type:            protocol.TypeSolve,
		ProtocolVersion: protocol.Version,
		RequestID:       "probe-1",
		MazeCSV:         string(raw),
		Algorithm:       *algorithm,
		Heuristic:       *heuristic,
	}
	if err := conn.WriteJSON(req); err != nil {
		logger.Fatalf("send SOLVE: %v", err)
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		logger.Fatalf("read: %v", err)
	}
	base, err := protocol.DecodeBase(msg)
	if err != nil {
		logger.Fatalf("decode: %v", err)
	}
	switch base.Type {
	case protocol.TypeResult:
		var res protocol.ResultMsg
		if err := json.Unmarshal(msg, &res); err != nil {
			logger.Fatalf("decode RESULT: %v", err)
		}
		logger.Printf("success=%t plan_length=%d generated=%d expanded=%d time_ms=%d",
			res.Success, res.PlanLength, res.StatesGenerated, res.StatesExpanded, res.TimeTakenMS)
		for i, action := range res.Plan {
			logger.Printf("%d. %s", i+1, action)
		}
	case protocol.TypeError:
		var e protocol.ErrorMsg
		if err := json.Unmarshal(msg, &e); err != nil {
			logger.Fatalf("decode ERROR: %v", err)
		}
		logger.Fatalf("server error %s: %s", e.Code, e.Message)
	default:
		logger.Fatalf("unexpected message type %q", base.Type)
	}
}
