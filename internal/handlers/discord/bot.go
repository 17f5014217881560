package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/gamenightlabs/gamenight/internal/games"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	engine     *games.Engine
	access     access.Service
	registry   *session.Registry
	logger     zerolog.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Access service, for the setup command
	Access access.Service

	// Session registry, for routing gateway events to running games
	Registry *session.Registry

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}
	if cfg.Access == nil {
		return nil, errors.New("access service cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("session registry cannot be nil")
	}

	// Create a new Discord session
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:    dg,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		access:     cfg.Access,
		registry:   cfg.Registry,
		logger:     cfg.Logger,
		config:     cfg,
	}

	dg.AddHandler(bot.handleInteraction)
	dg.AddHandler(bot.handleMessageCreate)
	dg.AddHandler(bot.handleReactionAdd)

	return bot, nil
}

// AttachEngine wires in the game engine. The engine is built after the bot
// because it posts through the bot's Messenger; attach it before Start.
func (b *Bot) AttachEngine(engine *games.Engine) {
	b.engine = engine
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if b.engine == nil {
		return errors.New("no game engine attached")
	}

	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.buildCommands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Error().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// Messenger returns the platform surface the game engine posts through
func (b *Bot) Messenger() games.Messenger {
	return &sessionMessenger{session: b.session}
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	if err := h.Handle(s, i); err != nil {
		b.logger.Error().Err(err).Str("command", name).Msg("command failed")
	}
}

// handleMessageCreate feeds channel messages to the session registry
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	name := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		name = m.Member.Nick
	}

	b.registry.DispatchMessage(models.InboundMessage{
		ID:         m.ID,
		GuildID:    m.GuildID,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: name,
		Content:    m.Content,
		FromBot:    m.Author.Bot,
	})
}

// handleReactionAdd feeds reactions to the session registry
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	fromBot := s.State.User != nil && r.UserID == s.State.User.ID

	b.registry.DispatchReaction(models.InboundReaction{
		MessageID: r.MessageID,
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.Name,
		FromBot:   fromBot,
	})
}

// memberRoleNames resolves a member's role IDs to role names
func (b *Bot) memberRoleNames(s *discordgo.Session, guildID string, member *discordgo.Member) []string {
	if member == nil {
		return nil
	}

	roles, err := guildRoles(s, guildID)
	if err != nil {
		b.logger.Error().Err(err).Str("guild_id", guildID).Msg("failed to resolve guild roles")
		return nil
	}

	byID := make(map[string]string, len(roles))
	for _, role := range roles {
		byID[role.ID] = role.Name
	}

	names := make([]string, 0, len(member.Roles))
	for _, id := range member.Roles {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

func guildRoles(s *discordgo.Session, guildID string) ([]*discordgo.Role, error) {
	if guild, err := s.State.Guild(guildID); err == nil && len(guild.Roles) > 0 {
		return guild.Roles, nil
	}
	return s.GuildRoles(guildID)
}
