package protocol

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schemas holds the compiled wire-message schemas. The solve service
// validates inbound SOLVE payloads before touching them.
type Schemas struct {
	Solve *jsonschema.Schema
}

// LoadSchemas compiles the schema files from dir.
func LoadSchemas(dir string) (*Schemas, error) {
	solve, err := jsonschema.Compile(filepath.Join(dir, "solve.schema.json"))
	if err != nil {
		return nil, fmt.Errorf("compile solve schema: %w", err)
	}
	return &Schemas{Solve: solve}, nil
}

// ValidateSolve checks a raw SOLVE message against the schema.
func (s *Schemas) ValidateSolve(raw []byte) error {
	if s == nil || s.Solve == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return s.Solve.Validate(v)
}
