// Package orchestrator is the external-collaborator layer: CLI-driven
// dataset ingestion, mode dispatch across the gauge transform and the three
// search strategies, and output-file writing. It wires internal/mcmmodel,
// internal/gauge, and internal/search together, validating configuration
// and logging before any of them run.
package orchestrator

import (
	"github.com/go-playground/validator/v10"

	"github.com/rawblock/mcm-search/internal/mcmmodel"
)

var configValidator = validator.New()

// Config is the fully-parsed CLI invocation: what dataset to load, what
// system it describes, and which modes to run against it.
type Config struct {
	BaseName     string `validate:"required"`
	NumVars      int    `validate:"required,min=1,max=128"`
	AlphabetSize int    `validate:"required,min=2"`

	LogFiles       bool
	GaugeTransform bool
	Exhaustive     bool
	Greedy         bool
	DivideConquer  bool
	JSONOutput     bool
	MaxOrder       int `validate:"min=0"`
}

// Validate checks cfg against its struct tags, wrapping the first
// violation as an InputOutOfRange ModelError.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return &mcmmodel.ModelError{Kind: mcmmodel.InputOutOfRange, Message: err.Error()}
	}
	return nil
}
