package round

import "github.com/KirkDiggler/ceelo/internal/models"

type GetRoundInput struct {
}

type RecordResultInput struct {
	Name    string
	Outcome models.Outcome
}

type ClearResultsInput struct {
}

type SetRosterInput struct {
	Names []string
}
