package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/ceelo/internal/ceelo"
	"github.com/KirkDiggler/ceelo/internal/models"
)

// service implements the Service interface
type service struct {
	// rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// GetRollResultMessage returns a message for a participant's roll result
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	label := ceelo.Label(input.Outcome)

	var titles, messages []string
	switch input.Outcome.Kind {
	case models.OutcomeKindAutoWin:
		titles = []string{
			"4-5-6!",
			"HEAD CRACK!",
			"Automatic!",
		}
		messages = []string{
			fmt.Sprintf("%s threw 4-5-6. Nobody is beating that.", name),
			fmt.Sprintf("Straight to the top! %s rolled the head crack.", name),
			fmt.Sprintf("%s just ended the argument with a 4-5-6.", name),
		}

	case models.OutcomeKindAutoLoss:
		titles = []string{
			"1-2-3...",
			"Ouch!",
			"Automatic Loss",
		}
		messages = []string{
			fmt.Sprintf("%s rolled 1-2-3. At least the slot is taken now.", name),
			fmt.Sprintf("The dice have spoken and they said no to %s.", name),
			fmt.Sprintf("%s found the one roll nobody wanted.", name),
		}

	case models.OutcomeKindTriple:
		titles = []string{
			fmt.Sprintf("Trips! %s", label),
			"Triple!",
			"Three of a Kind!",
		}
		messages = []string{
			fmt.Sprintf("%s rolled %s. Only a 4-5-6 or a bigger triple beats that.", name, label),
			fmt.Sprintf("Three matching dice for %s: %s!", name, label),
			fmt.Sprintf("%s is stacking %s. Respect.", name, label),
		}

	case models.OutcomeKindPoint:
		switch {
		case input.Outcome.Value >= 5:
			titles = []string{"Strong Point!", label}
			messages = []string{
				fmt.Sprintf("%s set a %s. That's going to hold up.", name, strings.ToLower(label)),
				fmt.Sprintf("Solid throw from %s: %s.", name, label),
			}
		case input.Outcome.Value <= 2:
			titles = []string{"Weak Point", label}
			messages = []string{
				fmt.Sprintf("%s scraped together a %s. Better than 1-2-3.", name, strings.ToLower(label)),
				fmt.Sprintf("%s got on the board with %s. Barely.", name, label),
			}
		default:
			titles = []string{"Point!", label}
			messages = []string{
				fmt.Sprintf("%s rolled %s. Middle of the pack.", name, label),
				fmt.Sprintf("%s is in it with %s.", name, label),
			}
		}

	default:
		return nil, fmt.Errorf("%w: %s", ceelo.ErrUnknownKind, input.Outcome.Kind)
	}

	return &GetRollResultMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
	}, nil
}

// GetWinnerMessage returns the announcement for a finished round
func (s *service) GetWinnerMessage(ctx context.Context, input *GetWinnerMessageInput) (*GetWinnerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	w := input.Winner
	if !w.Ready || len(w.Leaders) == 0 {
		return &GetWinnerMessageOutput{
			Message: s.pick([]string{
				"Still waiting on some rolls.",
				"Not everyone has thrown yet.",
				"The board is still open.",
			}),
		}, nil
	}

	label := ceelo.Label(w.Leaders[0].Outcome)
	if len(w.Leaders) == 1 {
		name := w.Leaders[0].Name
		return &GetWinnerMessageOutput{
			Message: s.pick([]string{
				fmt.Sprintf("%s takes the round with %s!", name, label),
				fmt.Sprintf("Winner: %s (%s).", name, label),
				fmt.Sprintf("Bow down to %s and their %s.", name, label),
			}),
		}, nil
	}

	names := make([]string, 0, len(w.Leaders))
	for _, l := range w.Leaders {
		names = append(names, l.Name)
	}
	return &GetWinnerMessageOutput{
		Message: fmt.Sprintf("Tie at %s between %s!", label, strings.Join(names, ", ")),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	errorType := ErrorTypeUnknown
	if input != nil && input.ErrorType != "" {
		errorType = input.ErrorType
	}

	var messages []string
	switch errorType {
	case ErrorTypeNotInRoster:
		messages = []string{
			"You're not on the list. Ask an admin to add you.",
			"Nice try, but you're not in this round.",
		}
	case ErrorTypeAlreadyRolled:
		messages = []string{
			"One roll each. You already had yours!",
			"No rerolls. Your dice are on the board.",
			"You already rolled this round. Patience.",
		}
	case ErrorTypeOutcomesExhausted:
		messages = []string{
			"Every outcome is taken this round. Time for a reset.",
			"The board is full. Ask an admin to reset the round.",
		}
	case ErrorTypeRoundChanged:
		messages = []string{
			"The round changed under you. Roll again.",
			"Someone else got in first. Give it another shot.",
		}
	default:
		messages = []string{
			"Something went wrong. Try again in a moment.",
			"The dice fell off the table. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}
