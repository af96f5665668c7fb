package protocol

import (
	"encoding/json"
	"testing"
)

func TestDecodeBase(t *testing.T) {
	m, err := DecodeBase([]byte(`{"type":"SOLVE","protocol_version":"1.0","maze_csv":"S"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Type != TypeSolve || m.ProtocolVersion != Version {
		t.Fatalf("base: %+v", m)
	}
	if _, err := DecodeBase([]byte(`{`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestIsKnownCode(t *testing.T) {
	for _, code := range []string{
		ErrProtoBadRequest, ErrBadRequest, ErrBadMaze,
		ErrUnknownAlgorithm, ErrHeuristicRequired, ErrInternal,
	} {
		if !IsKnownCode(code) {
			t.Fatalf("code %s should be known", code)
		}
	}
	if IsKnownCode("E_MADE_UP") {
		t.Fatalf("unknown code accepted")
	}
}

func TestResultMsg_PlanNeverNull(t *testing.T) {
	msg := ResultMsg{
		Type:            TypeResult,
		ProtocolVersion: Version,
		Plan:            []string{},
	}
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["plan"]) != "[]" {
		t.Fatalf("plan must encode as [], got %s", raw["plan"])
	}
}
