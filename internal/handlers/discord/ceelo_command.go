package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KirkDiggler/ceelo/internal/models"
	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	"github.com/bwmarrin/discordgo"
)

// CeeloCommand handles the /ceelo command
type CeeloCommand struct {
	BaseCommand
	roundService     round.Service
	messagingService messaging.Service
	log              *slog.Logger
}

// NewCeeloCommand creates a new ceelo command handler
func NewCeeloCommand(roundService round.Service, messagingService messaging.Service, log *slog.Logger) *CeeloCommand {
	return &CeeloCommand{
		BaseCommand: BaseCommand{
			Name:        "ceelo",
			Description: "Cee-Lo scoreboard commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Throw your dice for this round",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Roster name to roll as (defaults to your nickname)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show the current scoreboard",
				},
			},
		},
		roundService:     roundService,
		messagingService: messagingService,
		log:              log,
	}
}

// Handle processes a Discord interaction for the ceelo command
func (c *CeeloCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	switch sub.Name {
	case "roll":
		return c.handleRoll(s, i, rollName(i, sub))
	case "board":
		return c.handleBoard(s, i)
	}

	return errors.New("unknown subcommand")
}

// rollName reads the name option, defaulting to the caller's display name
func rollName(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range sub.Options {
		if opt.Name == "name" {
			if v := opt.StringValue(); v != "" {
				return v
			}
		}
	}
	return displayName(i)
}

// handleRoll handles the roll subcommand
func (c *CeeloCommand) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, name string) error {
	ctx := context.Background()

	out, err := c.roundService.Roll(ctx, &round.RollInput{Name: name})
	if err != nil {
		c.log.Info("discord roll refused", "name", name, "error", err)
		return RespondWithError(s, i, c.errorText(ctx, err))
	}

	msg, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: out.Name,
		Outcome:    out.Outcome,
	})
	if err != nil {
		c.log.Warn("failed to build roll message", "name", out.Name, "error", err)
		msg = nil
	}

	embeds := []*discordgo.MessageEmbed{renderRollEmbed(out, msg)}
	if out.Winner.Ready {
		embeds = append(embeds, renderBoardEmbed(out.Round, out.Winner, c.announcement(ctx, out.Winner)))
	}

	return RespondWithEmbeds(s, i, embeds...)
}

// handleBoard handles the board subcommand
func (c *CeeloCommand) handleBoard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.roundService.GetRound(ctx, &round.GetRoundInput{})
	if err != nil {
		c.log.Error("failed to load round", "error", err)
		return RespondWithError(s, i, c.errorText(ctx, err))
	}

	return RespondWithEmbeds(s, i, renderBoardEmbed(out.Round, out.Winner, c.announcement(ctx, out.Winner)))
}

func (c *CeeloCommand) announcement(ctx context.Context, w models.Winner) string {
	out, err := c.messagingService.GetWinnerMessage(ctx, &messaging.GetWinnerMessageInput{Winner: w})
	if err != nil {
		c.log.Warn("failed to build winner message", "error", err)
		return ""
	}
	return out.Message
}

func (c *CeeloCommand) errorText(ctx context.Context, err error) string {
	out, merr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType(err),
	})
	if merr != nil || out.Message == "" {
		return err.Error()
	}
	return out.Message
}
