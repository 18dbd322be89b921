package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single collaborator probe.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck
}

// Failed reports whether any check ended in HealthError.
func (r HealthReport) Failed() bool {
	for _, check := range r.Checks {
		if check.Status == HealthError {
			return true
		}
	}
	return false
}
