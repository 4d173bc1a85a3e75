package domain

import "fmt"

// ConfigurationError means a required startup artifact (model, feature schema)
// is missing or unreadable. The process must not serve requests after one.
type ConfigurationError struct {
	Artifact string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: artifact %q: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("configuration error: artifact %q", e.Artifact)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvalidInputError means a raw case attribute could not be coerced to the
// numeric type the model expects. Reported to the caller, never retried.
type InvalidInputError struct {
	Attribute string
	Err       error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid value for attribute %q: %v", e.Attribute, e.Err)
	}
	return fmt.Sprintf("invalid value for attribute %q", e.Attribute)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// ConsistencyError means the attribution output and the feature vector were
// computed against different schemas, or their totals do not reconcile with
// the model's prediction. This is an integration bug, not bad input.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency error: %s", e.Reason)
}
