package domain

import "time"

// ImpactSummary is the human-readable description of an operation's effect
// that must be shown before a destructive or multi-item action runs.
type ImpactSummary struct {
	Operation            Operation
	TargetCount          int
	Description          string
	RequiresConfirmation bool
	Token                string
	ExpiresAt            *time.Time
}
