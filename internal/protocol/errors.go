package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"

	// Request layer.
	ErrBadRequest        = "E_BAD_REQUEST"
	ErrBadMaze           = "E_BAD_MAZE"
	ErrUnknownAlgorithm  = "E_UNKNOWN_ALGORITHM"
	ErrHeuristicRequired = "E_HEURISTIC_REQUIRED"
	ErrInternal          = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest:   {},
	ErrBadRequest:        {},
	ErrBadMaze:           {},
	ErrUnknownAlgorithm:  {},
	ErrHeuristicRequired: {},
	ErrInternal:          {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
