package bot

import (
	"fmt"
	"giveaway-bot/commands"
	"giveaway-bot/model"
	"giveaway-bot/utils"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	DB                 *sqlx.DB
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	RegisteredCommands []*discordgo.ApplicationCommand
	scheduler          *Scheduler
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

	b := &Bot{
		Session: dg,
		Config:  cfg,
		DB:      db,
	}
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	log.Println("Registering commands...")
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, "", commands.GenerateCommands())
	if err != nil {
		log.Printf("Cannot register commands: %v", err)
	}
	b.RegisteredCommands = registered

	b.scheduler.Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if b.Config.LogWebhookURL != "" {
		if err := utils.LogInfo(b.Config.LogWebhookURL, "System", "Startup", "Bot has started successfully."); err != nil {
			log.Printf("Failed to send startup log: %v", err)
		}
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.scheduler.Stop()
	b.Session.Close()
}
