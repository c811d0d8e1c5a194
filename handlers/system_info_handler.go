package handlers

import (
	"fmt"
	"giveaway-bot/bot"
	"giveaway-bot/utils"
	"giveaway-bot/utils/database/giveaways"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

func SystemInfoHandler(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}
	memUsage := 0.0
	if vm != nil {
		memUsage = vm.UsedPercent
	}
	uptime := time.Duration(0)
	platform := "unknown"
	if hostInfo != nil {
		uptime = time.Duration(hostInfo.Uptime) * time.Second
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}

	activeGiveaways := 0
	active, err := giveaways.FindGiveaways(b.DB, giveaways.All())
	if err != nil {
		log.Printf("Failed to count active giveaways: %v", err)
	} else {
		activeGiveaways = len(active)
	}

	var dbSizeKB int64
	if info, err := os.Stat(b.Config.DatabasePath); err == nil {
		dbSizeKB = info.Size() / 1024
	}

	embed := &discordgo.MessageEmbed{
		Title: "System Info",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Platform", Value: platform, Inline: true},
			{Name: "Uptime", Value: uptime.String(), Inline: true},
			{Name: "Go Runtime", Value: runtime.Version(), Inline: true},
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%%", cpuCount, cpuUsage), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%%", memUsage), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "Active Giveaways", Value: fmt.Sprintf("%d", activeGiveaways), Inline: true},
			{Name: "Database Size", Value: fmt.Sprintf("%d KB", dbSizeKB), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	utils.SendEmbedResponse(s, i, embed)
}
