package models

// SweepKind selects one of the reminder scheduler's three sweeps.
type SweepKind string

const (
	Sweep24Hour   SweepKind = "24h"
	Sweep1Hour    SweepKind = "1h"
	SweepFollowUp SweepKind = "followup"
)

// IsValid reports whether k names a known sweep.
func (k SweepKind) IsValid() bool {
	switch k {
	case Sweep24Hour, Sweep1Hour, SweepFollowUp:
		return true
	}
	return false
}

// SweepResult reports one sweep run. Failures are per-appointment; the sweep
// itself always completes.
type SweepResult struct {
	Kind   SweepKind `json:"kind"`
	Sent   int       `json:"sent"`
	Failed int       `json:"failed"`
	Errors []string  `json:"errors,omitempty"`
}

// SweepPayload is the asynq task payload for a scheduled sweep.
type SweepPayload struct {
	Kind SweepKind `json:"kind"`
}
