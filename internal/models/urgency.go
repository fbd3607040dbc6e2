package models

import "fmt"

// Urgency grades how quickly a user should act. It only drives display styling.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// UnmarshalText rejects anything outside low/medium/high so bad seed data fails at load.
func (u *Urgency) UnmarshalText(text []byte) error {
	v := Urgency(text)
	if !v.Valid() {
		return fmt.Errorf("invalid urgency %q", string(text))
	}
	*u = v
	return nil
}
