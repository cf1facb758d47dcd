package ceelo

import (
	"sort"

	"github.com/KirkDiggler/ceelo/internal/models"
)

// Evaluate builds the leaderboard for a round. The round is ready once
// every roster name has a result; results for names outside the roster
// are ignored. Leaders are ordered by score, then name.
func Evaluate(roster []string, results map[string]models.Outcome) models.Winner {
	if len(roster) == 0 {
		return models.Winner{}
	}

	scored := make([]models.Leader, 0, len(roster))
	for _, name := range roster {
		out, ok := results[name]
		if !ok {
			return models.Winner{}
		}
		scored = append(scored, models.Leader{Name: name, Outcome: out})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := Score(scored[i].Outcome), Score(scored[j].Outcome)
		if si != sj {
			return si > sj
		}
		return scored[i].Name < scored[j].Name
	})

	top := Score(scored[0].Outcome)
	n := 1
	for n < len(scored) && Score(scored[n].Outcome) == top {
		n++
	}

	return models.Winner{
		Ready:    true,
		Leaders:  scored[:n:n],
		TopScore: top,
	}
}
