package forecast

import "fmt"

// InvalidConfigError reports a pipeline configuration that fails validation
// before any data is touched.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// InsufficientDataError reports a series too short to produce even one
// windowed example.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: have %d closes, need at least %d", e.Have, e.Need)
}

// ModelFitError reports a training failure on degenerate input.
type ModelFitError struct {
	Strategy Strategy
	Reason   string
}

func (e *ModelFitError) Error() string {
	return fmt.Sprintf("model fit (%s): %s", e.Strategy, e.Reason)
}

// EvaluationError reports an empty test split or undefined metrics.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return "evaluation: " + e.Reason
}
