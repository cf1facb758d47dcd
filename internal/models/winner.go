package models

// Leader is a participant tied for the top score
type Leader struct {
	// Name is the participant name
	Name string

	// Outcome is what they rolled
	Outcome Outcome
}

// Winner is the leaderboard for a round
type Winner struct {
	// Ready is false until every roster participant has rolled
	Ready bool

	// Leaders holds everyone at TopScore, ordered by name
	Leaders []Leader

	// TopScore is the highest score in the round; zero when not ready
	TopScore int
}
