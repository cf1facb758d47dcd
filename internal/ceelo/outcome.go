package ceelo

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/ceelo/internal/models"
)

// KeyCount is the number of distinct outcome slots: 4-5-6, 1-2-3, six
// triples and six points.
const KeyCount = 14

const (
	KeyAutoWin  = "456"
	KeyAutoLoss = "123"
)

const (
	scoreAutoWin    = 1000
	scoreTripleBase = 300
	scorePointBase  = 100
	scoreAutoLoss   = 0
)

// Classify maps three dice in any order to their outcome class
func Classify(dice [3]int) (models.Outcome, error) {
	for _, d := range dice {
		if d < 1 || d > 6 {
			return models.Outcome{}, fmt.Errorf("%w: got %d", ErrInvalidDie, d)
		}
	}

	sorted := dice
	sort.Ints(sorted[:])
	lo, mid, hi := sorted[0], sorted[1], sorted[2]

	out := models.Outcome{Dice: sorted}
	switch {
	case lo == 4 && mid == 5 && hi == 6:
		out.Kind = models.OutcomeKindAutoWin
	case lo == 1 && mid == 2 && hi == 3:
		out.Kind = models.OutcomeKindAutoLoss
	case lo == hi:
		out.Kind = models.OutcomeKindTriple
		out.Value = lo
	case lo == mid:
		out.Kind = models.OutcomeKindPoint
		out.Value = hi
	case mid == hi:
		out.Kind = models.OutcomeKindPoint
		out.Value = lo
	default:
		// three distinct dice outside the two runs: no score, throw again
		return models.Outcome{Dice: sorted}, ErrNoScore
	}

	return out, nil
}

// Key returns the uniqueness slot for an outcome
func Key(o models.Outcome) string {
	switch o.Kind {
	case models.OutcomeKindAutoWin:
		return KeyAutoWin
	case models.OutcomeKindAutoLoss:
		return KeyAutoLoss
	case models.OutcomeKindTriple:
		return fmt.Sprintf("triple:%d", o.Value)
	case models.OutcomeKindPoint:
		return fmt.Sprintf("point:%d", o.Value)
	}
	return ""
}

// Score ranks an outcome; higher wins. Unknown kinds score below AutoLoss.
func Score(o models.Outcome) int {
	switch o.Kind {
	case models.OutcomeKindAutoWin:
		return scoreAutoWin
	case models.OutcomeKindAutoLoss:
		return scoreAutoLoss
	case models.OutcomeKindTriple:
		return scoreTripleBase + o.Value
	case models.OutcomeKindPoint:
		return scorePointBase + o.Value
	}
	return scoreAutoLoss - 1
}

// Label returns the text shown to players for an outcome
func Label(o models.Outcome) string {
	switch o.Kind {
	case models.OutcomeKindAutoWin:
		return "4-5-6!"
	case models.OutcomeKindAutoLoss:
		return "1-2-3"
	case models.OutcomeKindTriple:
		return fmt.Sprintf("Triple %ds", o.Value)
	case models.OutcomeKindPoint:
		return fmt.Sprintf("Point %d", o.Value)
	}
	return "Unknown"
}

// Validate checks that an outcome loaded from storage is one Classify
// could have produced.
func Validate(o models.Outcome) error {
	got, err := Classify(o.Dice)
	if err != nil {
		return err
	}
	if got.Kind != o.Kind || got.Value != o.Value {
		return fmt.Errorf("%w: %s/%d does not match dice %v", ErrUnknownKind, o.Kind, o.Value, o.Dice)
	}
	return nil
}

// AllKeys lists every outcome slot, best first
func AllKeys() []string {
	keys := make([]string, 0, KeyCount)
	keys = append(keys, KeyAutoWin)
	for v := 6; v >= 1; v-- {
		keys = append(keys, fmt.Sprintf("triple:%d", v))
	}
	for v := 6; v >= 1; v-- {
		keys = append(keys, fmt.Sprintf("point:%d", v))
	}
	keys = append(keys, KeyAutoLoss)
	return keys
}

// ClaimedKeys collects the slots already held in a results map
func ClaimedKeys(results map[string]models.Outcome) map[string]struct{} {
	claimed := make(map[string]struct{}, len(results))
	for _, o := range results {
		claimed[Key(o)] = struct{}{}
	}
	return claimed
}
