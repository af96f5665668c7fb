package protocol

// SolveMsg asks the service to run one search over an inline maze grid.
type SolveMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	RequestID       string `json:"request_id,omitempty"`
	MazeCSV         string `json:"maze_csv"`
	Algorithm       string `json:"algorithm"`
	Heuristic       string `json:"heuristic,omitempty"`
}

// ResultMsg reports one completed search: the plan when found, plus the run
// statistics. Success=false with empty plan means the search exhausted;
// that is an ordinary outcome, not an ERROR.
type ResultMsg struct {
	Type            string   `json:"type"`
	ProtocolVersion string   `json:"protocol_version"`
	RequestID       string   `json:"request_id,omitempty"`
	RunID           string   `json:"run_id,omitempty"`
	Success         bool     `json:"success"`
	Plan            []string `json:"plan"`
	PlanLength      int      `json:"plan_length"`
	StatesGenerated int      `json:"states_generated"`
	StatesExpanded  int      `json:"states_expanded"`
	TimeTakenMS     int64    `json:"time_taken_ms"`
}

type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	RequestID       string `json:"request_id,omitempty"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}
