package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/games"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/access"
)

// commandTimeout bounds the storage work a command does before responding
const commandTimeout = 10 * time.Second

// command is a slash command backed by a handler closure
type command struct {
	BaseCommand
	run func(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// Handle processes a Discord interaction for the command
func (c *command) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.run(s, i)
}

// buildCommands assembles the bot's full slash command surface
func (b *Bot) buildCommands() []CommandHandler {
	intOption := func(name, description string, min float64) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        name,
			Description: description,
			Required:    true,
			MinValue:    &min,
		}
	}

	lyricsChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(bank.LyricsCategories))
	for _, c := range bank.LyricsCategories {
		lyricsChoices = append(lyricsChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c,
			Value: c,
		})
	}

	return []CommandHandler{
		&command{
			BaseCommand: BaseCommand{
				Name:        "setup",
				Description: "Choose which roles may run game commands",
				AdminOnly:   true,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role1",
						Description: "A role allowed to run game commands",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role2",
						Description: "Another allowed role",
					},
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role3",
						Description: "Another allowed role",
					},
				},
			},
			run: b.handleSetup,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "startguess",
				Description: "Start a guess-the-number game",
				Options: []*discordgo.ApplicationCommandOption{
					intOption("max", "Highest possible number", 2),
					intOption("duration", "Guessing time in seconds (30-600)", 30),
				},
			},
			run: b.handleStartGuess,
		},
		b.stopCommand("stopguess", "Stop the running guess-the-number game", models.GameKindNumberGuess),
		&command{
			BaseCommand: BaseCommand{
				Name:        "starttrivia",
				Description: "Start a trivia run",
			},
			run: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return b.handleSimpleStart(s, i, b.engine.StartTrivia, "🧠 Trivia is starting!")
			},
		},
		b.stopCommand("stoptrivia", "Stop the running trivia game", models.GameKindTrivia),
		&command{
			BaseCommand: BaseCommand{
				Name:        "scramble",
				Description: "Start a word scramble run",
			},
			run: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return b.handleSimpleStart(s, i, b.engine.StartScramble, "🔤 Scramble is starting!")
			},
		},
		b.stopCommand("stopscramble", "Stop the running scramble game", models.GameKindScramble),
		&command{
			BaseCommand: BaseCommand{
				Name:        "emoji",
				Description: "Start an emoji decode run",
			},
			run: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
				return b.handleSimpleStart(s, i, b.engine.StartEmoji, "🧩 Emoji decode is starting!")
			},
		},
		b.stopCommand("stopemoji", "Stop the running emoji game", models.GameKindEmoji),
		&command{
			BaseCommand: BaseCommand{
				Name:        "lyrics",
				Description: "Start a lyrics guessing run",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "category",
						Description: "Song bank to play",
						Required:    true,
						Choices:     lyricsChoices,
					},
				},
			},
			run: b.handleStartLyrics,
		},
		b.stopCommand("stoplyrics", "Stop the running lyrics game", models.GameKindLyrics),
		&command{
			BaseCommand: BaseCommand{
				Name:        "startrps",
				Description: "Start rock-paper-scissors: players guess what beats your pick",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "pick",
						Description: "Your secret pick",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "rock", Value: "rock"},
							{Name: "paper", Value: "paper"},
							{Name: "scissors", Value: "scissors"},
						},
					},
				},
			},
			run: b.handleStartRPS,
		},
		b.stopCommand("stoprps", "Stop the running rock-paper-scissors game", models.GameKindRPS),
		&command{
			BaseCommand: BaseCommand{
				Name:        "leaderboard",
				Description: "Show the winners leaderboard",
			},
			run: b.handleLeaderboard,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "clearleaderboard",
				Description: "Clear the winners leaderboard",
				AdminOnly:   true,
			},
			run: b.handleClearLeaderboard,
		},
	}
}

// stopCommand builds the stop command for one game. Looping games show the
// leaderboard standings on their way out.
func (b *Bot) stopCommand(name, description string, kind models.GameKind) CommandHandler {
	showBoard := kind == models.GameKindTrivia || kind == models.GameKindScramble

	return &command{
		BaseCommand: BaseCommand{
			Name:        name,
			Description: description,
		},
		run: func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			if err := b.engine.Stop(ctx, i.GuildID, kind); err != nil {
				return RespondWithError(s, i, err)
			}
			if err := RespondWithMessage(s, i, fmt.Sprintf("🛑 %s stopped.", kind)); err != nil {
				return err
			}

			if showBoard {
				embed, err := b.engine.Leaderboard(ctx, i.GuildID)
				if err != nil {
					b.logger.Error().Err(err).Str("guild_id", i.GuildID).Msg("leaderboard read failed")
					return nil
				}
				if _, err := s.ChannelMessageSendEmbed(i.ChannelID, toMessageEmbed(embed)); err != nil {
					b.logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("failed to post standings")
				}
			}
			return nil
		},
	}
}

// startInput collects the invoker-dependent fields every start shares
func (b *Bot) startInput(s *discordgo.Session, i *discordgo.InteractionCreate) games.StartInput {
	hostID := ""
	hostName := ""
	if i.Member != nil && i.Member.User != nil {
		hostID = i.Member.User.ID
		hostName = i.Member.User.Username
		if i.Member.Nick != "" {
			hostName = i.Member.Nick
		}
	}

	return games.StartInput{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		HostID:    hostID,
		HostName:  hostName,
		RoleNames: b.memberRoleNames(s, i.GuildID, i.Member),
	}
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		out[opt.Name] = opt
	}
	return out
}

func (b *Bot) handleSetup(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var roleNames []string
	for _, opt := range i.ApplicationCommandData().Options {
		role := opt.RoleValue(s, i.GuildID)
		if role != nil && role.Name != "" {
			roleNames = append(roleNames, role.Name)
		}
	}

	err := b.access.Configure(ctx, &access.ConfigureInput{
		GuildID:      i.GuildID,
		AllowedRoles: roleNames,
	})
	if err != nil {
		b.logger.Error().Err(err).Str("guild_id", i.GuildID).Msg("setup failed")
		return RespondWithError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"✅ Setup complete. Game commands are open to: **%s**", strings.Join(roleNames, "**, **")))
}

// handleSimpleStart runs the option-less game starts
func (b *Bot) handleSimpleStart(s *discordgo.Session, i *discordgo.InteractionCreate, start func(context.Context, *games.StartInput) error, ack string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	input := b.startInput(s, i)
	if err := start(ctx, &input); err != nil {
		return RespondWithError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, ack)
}

func (b *Bot) handleStartGuess(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	opts := optionMap(i)
	max := 100
	durationSecs := int64(120)
	if opt, ok := opts["max"]; ok {
		max = int(opt.IntValue())
	}
	if opt, ok := opts["duration"]; ok {
		durationSecs = opt.IntValue()
	}

	err := b.engine.StartNumberGuess(ctx, &games.NumberGuessInput{
		Start:    b.startInput(s, i),
		Max:      max,
		Duration: time.Duration(durationSecs) * time.Second,
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "🎯 Number guess is starting!")
}

func (b *Bot) handleStartLyrics(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	category := ""
	if opt, ok := optionMap(i)["category"]; ok {
		category = opt.StringValue()
	}

	err := b.engine.StartLyrics(ctx, &games.LyricsInput{
		Start:    b.startInput(s, i),
		Category: category,
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "🎵 Lyrics guess is starting!")
}

func (b *Bot) handleStartRPS(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pick := ""
	if opt, ok := optionMap(i)["pick"]; ok {
		pick = opt.StringValue()
	}

	err := b.engine.StartRPS(ctx, &games.RPSInput{
		Start:    b.startInput(s, i),
		HostPick: pick,
	})
	if err != nil {
		return RespondWithError(s, i, err)
	}
	// the host's pick stays secret; the public announce comes from the game
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✊ RPS is starting! Your pick (%s) stays hidden.", pick))
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	embed, err := b.engine.Leaderboard(ctx, i.GuildID)
	if err != nil {
		b.logger.Error().Err(err).Str("guild_id", i.GuildID).Msg("leaderboard read failed")
		return RespondWithError(s, i, err)
	}
	return RespondWithEmbed(s, i, toMessageEmbed(embed))
}

func (b *Bot) handleClearLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	err := b.engine.ResetLeaderboard(ctx, i.GuildID, b.memberRoleNames(s, i.GuildID, i.Member))
	if err != nil {
		return RespondWithError(s, i, err)
	}
	return RespondWithMessage(s, i, "🧹 The leaderboard has been cleared.")
}
