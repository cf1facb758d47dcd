package web

import (
	"time"

	"github.com/KirkDiggler/ceelo/internal/ceelo"
	"github.com/KirkDiggler/ceelo/internal/models"
)

// resultJSON is one participant's outcome as the frontend reads it
type resultJSON struct {
	Dice     [3]int    `json:"dice"`
	Kind     string    `json:"kind"`
	Value    int       `json:"value"`
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Score    int       `json:"score"`
	RolledAt time.Time `json:"rolledAt"`
}

type leaderJSON struct {
	Name   string     `json:"name"`
	Result resultJSON `json:"result"`
}

type winnerJSON struct {
	Ready    bool         `json:"ready"`
	Leaders  []leaderJSON `json:"leaders"`
	TopScore int          `json:"topScore"`
}

// stateJSON is the full scoreboard document
type stateJSON struct {
	Friends []string              `json:"friends"`
	Results map[string]resultJSON `json:"results"`
	Winner  winnerJSON            `json:"winner"`
}

// rollJSON is the reply to a successful roll
type rollJSON struct {
	Name         string     `json:"name"`
	Result       resultJSON `json:"result"`
	Title        string     `json:"title,omitempty"`
	Message      string     `json:"message,omitempty"`
	Announcement string     `json:"announcement,omitempty"`
	stateJSON
}

type rollRequest struct {
	Name string `json:"name"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginJSON struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type friendsRequest struct {
	Friends []string `json:"friends"`
}

func toResultJSON(o models.Outcome) resultJSON {
	return resultJSON{
		Dice:     o.Dice,
		Kind:     string(o.Kind),
		Value:    o.Value,
		Key:      ceelo.Key(o),
		Label:    ceelo.Label(o),
		Score:    ceelo.Score(o),
		RolledAt: o.RolledAt,
	}
}

func toStateJSON(round *models.Round, winner models.Winner) stateJSON {
	state := stateJSON{
		Friends: []string{},
		Results: map[string]resultJSON{},
		Winner: winnerJSON{
			Ready:    winner.Ready,
			Leaders:  make([]leaderJSON, 0, len(winner.Leaders)),
			TopScore: winner.TopScore,
		},
	}

	if round != nil {
		state.Friends = append(state.Friends, round.Roster...)
		for name, o := range round.Results {
			state.Results[name] = toResultJSON(o)
		}
	}

	for _, l := range winner.Leaders {
		state.Winner.Leaders = append(state.Winner.Leaders, leaderJSON{
			Name:   l.Name,
			Result: toResultJSON(l.Outcome),
		})
	}

	return state
}
