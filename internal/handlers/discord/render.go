package discord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/ceelo/internal/ceelo"
	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	"github.com/bwmarrin/discordgo"
)

// renderRollEmbed renders a committed roll; msg may be nil
func renderRollEmbed(out *round.RollOutput, msg *messaging.GetRollResultMessageOutput) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s rolled %s", out.Name, ceelo.Label(out.Outcome))
	description := ""
	if msg != nil {
		title = msg.Title
		description = msg.Message
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Dice",
				Value:  formatDice(out.Outcome.Dice),
				Inline: true,
			},
			{
				Name:   "Result",
				Value:  ceelo.Label(out.Outcome),
				Inline: true,
			},
			{
				Name:   "Score",
				Value:  fmt.Sprintf("%d", ceelo.Score(out.Outcome)),
				Inline: true,
			},
		},
	}
}

// renderBoardEmbed lists every roster name with its result, best first
func renderBoardEmbed(r *models.Round, w models.Winner, announcement string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Cee-Lo Scoreboard",
		Color: colorBoard,
	}

	if r == nil || len(r.Roster) == 0 {
		embed.Description = "No roster yet."
		return embed
	}

	var rolled, waiting []string
	for _, name := range r.Roster {
		if r.HasRolled(name) {
			rolled = append(rolled, name)
		} else {
			waiting = append(waiting, name)
		}
	}
	sort.SliceStable(rolled, func(i, j int) bool {
		si, sj := ceelo.Score(r.Results[rolled[i]]), ceelo.Score(r.Results[rolled[j]])
		if si != sj {
			return si > sj
		}
		return rolled[i] < rolled[j]
	})

	var sb strings.Builder
	for idx, name := range rolled {
		o := r.Results[name]
		fmt.Fprintf(&sb, "%d. **%s** %s (%s)\n", idx+1, name, ceelo.Label(o), formatDice(o.Dice))
	}
	if len(rolled) == 0 {
		sb.WriteString("Nobody has rolled yet.\n")
	}

	embed.Description = sb.String()

	if len(waiting) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Waiting on",
			Value: strings.Join(waiting, ", "),
		})
	}

	if w.Ready && announcement != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Winner",
			Value: announcement,
		})
	}

	return embed
}

func formatDice(d [3]int) string {
	return fmt.Sprintf("%d-%d-%d", d[0], d[1], d[2])
}

// errorType maps round errors to the messaging catalogue
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, round.ErrNotInRoster):
		return messaging.ErrorTypeNotInRoster
	case errors.Is(err, round.ErrAlreadyRolled):
		return messaging.ErrorTypeAlreadyRolled
	case errors.Is(err, round.ErrOutcomesExhausted):
		return messaging.ErrorTypeOutcomesExhausted
	case errors.Is(err, round.ErrRoundChanged):
		return messaging.ErrorTypeRoundChanged
	}
	return messaging.ErrorTypeUnknown
}
