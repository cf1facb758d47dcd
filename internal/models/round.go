package models

// Round is a snapshot of the shared scoreboard state
type Round struct {
	// Roster is the ordered list of participant names
	Roster []string

	// Results maps a participant name to the outcome they rolled
	Results map[string]Outcome
}

// HasRolled reports whether name already has a recorded outcome
func (r *Round) HasRolled(name string) bool {
	if r == nil || r.Results == nil {
		return false
	}
	_, ok := r.Results[name]
	return ok
}

// InRoster reports whether name is part of the roster
func (r *Round) InRoster(name string) bool {
	if r == nil {
		return false
	}
	for _, n := range r.Roster {
		if n == name {
			return true
		}
	}
	return false
}
