package domain

import "time"

// BuildStatus is the outcome of building one configuration.
type BuildStatus string

const (
	// StatusSucceeded indicates the configuration was packaged successfully.
	StatusSucceeded BuildStatus = "Succeeded"
	// StatusFailed indicates the package build failed.
	StatusFailed BuildStatus = "Failed"
)

// BuildResult records the outcome of one configuration build so a CI run
// can be inspected after the fact.
type BuildResult struct {
	Fingerprint string            `json:"fingerprint"`
	Reference   string            `json:"reference"`
	Status      BuildStatus       `json:"status"`
	Settings    map[string]string `json:"settings,omitempty"`
	Error       string            `json:"error,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	Duration    time.Duration     `json:"duration"`
}
