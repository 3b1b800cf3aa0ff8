package main

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/telemetry"
)

var printer = message.NewPrinter(language.English)

// formatGold groups thousands, e.g. 12,500g
func formatGold(gold int) string {
	return printer.Sprintf("%dg", gold)
}

// formatStats is the one-line HUD summary
func formatStats(s component.PlayerStats) string {
	return printer.Sprintf("HP %d/%d  SH %d/%d  %s  cannons %d  reload %.2fs  %s",
		s.HP, s.MaxHP, s.Shield, s.MaxShield, formatGold(s.Gold),
		s.CannonCount, s.ReloadSpeed.Seconds(), s.Ammunition)
}

// formatCooldown renders a skill wait as whole seconds, rounded up
func formatCooldown(d time.Duration) string {
	if d <= 0 {
		return "ready"
	}
	return fmt.Sprintf("%ds", int((d+time.Second-1)/time.Second))
}

// formatTotals is the game over summary
func formatTotals(wave int, t telemetry.Totals) []string {
	return []string{
		printer.Sprintf("Reached wave %d", wave),
		printer.Sprintf("Waves cleared: %d", t.WavesCleared),
		printer.Sprintf("Ships sunk: %d (bosses: %d)", t.EnemiesSunk, t.BossesSunk),
		printer.Sprintf("Gold earned: %s", formatGold(int(t.GoldEarned))),
		printer.Sprintf("Shots fired: %d", t.ShotsFired),
		printer.Sprintf("Damage taken: %d", t.DamageTaken),
	}
}
