package syscatalog

import "errors"

var (
	ErrAgentNotFound = errors.New("ai agent not found")
	ErrAgentExists   = errors.New("ai agent already exists")
	ErrModelNotFound = errors.New("llm model not found")
	ErrModelExists   = errors.New("llm model already exists")
)
