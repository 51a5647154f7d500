package utils

import "github.com/google/uuid"

// TraceIDGenerator issues request trace ids. Version 7 ids sort by creation
// time, which keeps access logs ordered when grepped by id.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate falls back to a random v4 id when a v7 id cannot be produced.
func (g *TraceIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
