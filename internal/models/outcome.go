package models

import (
	"time"
)

// OutcomeKind tags which Cee-Lo class an outcome belongs to
type OutcomeKind string

const (
	// OutcomeKindAutoWin is a 4-5-6 roll
	OutcomeKindAutoWin OutcomeKind = "auto_win"

	// OutcomeKindAutoLoss is a 1-2-3 roll
	OutcomeKindAutoLoss OutcomeKind = "auto_loss"

	// OutcomeKindTriple is three dice showing the same face
	OutcomeKindTriple OutcomeKind = "triple"

	// OutcomeKindPoint is a pair plus a single; the single is the point
	OutcomeKindPoint OutcomeKind = "point"
)

// Outcome is the classified result of one Cee-Lo throw
type Outcome struct {
	// Kind is the outcome class
	Kind OutcomeKind `json:"kind"`

	// Value is the triple face or the point value; zero for the auto kinds
	Value int `json:"value"`

	// Dice holds the three dice sorted ascending
	Dice [3]int `json:"dice"`

	// RolledAt is when the outcome was recorded
	RolledAt time.Time `json:"rolledAt"`
}
