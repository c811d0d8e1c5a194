package handlers

import (
	"giveaway-bot/bot"
	"giveaway-bot/utils"
	"log"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"giveaway-create": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !utils.HasAdminRole(i.Member, b.Config.AdminRoleIDs) {
				utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
				return
			}
			HandleGiveawayCreate(s, i, b)
		},
		"giveaway-list": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleGiveawayList(s, i, b)
		},
		"system-info": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !utils.HasAdminRole(i.Member, b.Config.AdminRoleIDs) {
				utils.SendErrorResponse(s, i, "You do not have permission to use this command.")
				return
			}
			SystemInfoHandler(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}
