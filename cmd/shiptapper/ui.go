package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shiptapper/audio"
	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/shipyard"
	"github.com/lixenwraith/shiptapper/sim"
	"github.com/lixenwraith/shiptapper/telemetry"
)

const (
	// Terminals report key repeats, not releases; movement lapses after this
	moveHold      = 350 * time.Millisecond
	messageLinger = 2 * time.Second
)

type screenMode uint8

const (
	modeBattle screenMode = iota
	modeShipyard
	modeGameOver
)

var (
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWater      = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleIsland     = styleWater.Foreground(tcell.ColorOlive)
	stylePlayer     = styleWater.Foreground(tcell.ColorAqua).Bold(true)
	styleShip       = styleWater.Foreground(tcell.ColorWhite)
	styleShipSmoke  = styleWater.Foreground(tcell.ColorGray)
	styleShipFire   = styleWater.Foreground(tcell.ColorRed)
	styleGold       = styleWater.Foreground(tcell.ColorYellow).Bold(true)
	styleHealth     = styleWater.Foreground(tcell.ColorLime).Bold(true)
	styleShotPlayer = styleWater.Foreground(tcell.ColorYellow)
	styleShotEnemy  = styleWater.Foreground(tcell.ColorRed)
	styleShotBoss   = styleWater.Foreground(tcell.ColorOrange)
	styleSelected   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// floatingText is a label kept on screen until it expires
type floatingText struct {
	text    string
	pos     core.Vec2
	style   tcell.Style
	expires time.Time
}

// tui renders frames with tcell and maps keys onto session inputs
type tui struct {
	screen   tcell.Screen
	session  *sim.Session
	host     *gameHost
	sound    *audio.Engine
	recorder *telemetry.Recorder
	logger   *slog.Logger
	interval time.Duration
	arena    core.Size

	width, height int
	view          viewport
	mode          screenMode
	frame         sim.Frame

	moveDir   core.Vec2
	moveUntil time.Time

	texts        []floatingText
	message      string
	messageUntil time.Time

	offers []shipyard.Upgrade
}

func newTUI(session *sim.Session, host *gameHost, sound *audio.Engine, recorder *telemetry.Recorder, arena core.Size, interval time.Duration, logger *slog.Logger) (*tui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	u := &tui{
		screen:   screen,
		session:  session,
		host:     host,
		sound:    sound,
		recorder: recorder,
		logger:   logger,
		interval: interval,
		arena:    arena,
	}
	u.handleResize()
	return u, nil
}

func (u *tui) handleResize() {
	u.width, u.height = u.screen.Size()
	u.view = newViewport(u.arena, u.width, u.height)
}

func (u *tui) setMessage(format string, args ...any) {
	u.message = fmt.Sprintf(format, args...)
	u.messageUntil = time.Now().Add(messageLinger)
}

// run drives the session from the frame ticker until the player quits
func (u *tui) run() {
	defer func() {
		if r := recover(); r != nil {
			u.screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSHIPTAPPER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer u.screen.Fini()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 128)
	go u.poll(eventChan)

	u.session.StartGame()
	u.logger.Info("game started", "run", u.session.RunID(), "levels", u.session.Levels())

	for {
		select {
		case ev := <-eventChan:
			if !u.handleInput(ev) {
				return
			}

		case <-u.host.cleared:
			u.enterShipyard()

		case <-u.host.gameOver:
			u.mode = modeGameOver
			u.session.SetMovement(core.Vec2{})

		case now := <-ticker.C:
			u.releaseMovement(now)
			if err := u.session.Advance(now); err != nil && !errors.Is(err, sim.ErrTickInProgress) {
				u.logger.Warn("tick failed", "error", err)
			}
			u.frame = u.session.Frame()
			u.collectTexts(u.frame.Events, now)
			u.draw(now)
		}
	}
}

// poll forwards terminal events; PollEvent returns nil once the screen is finalized
func (u *tui) poll(out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			u.screen.Fini()
			fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

func (u *tui) enterShipyard() {
	u.mode = modeShipyard
	u.moveDir = core.Vec2{}
	u.session.SetMovement(core.Vec2{})
	u.offers = shipyard.Offers(u.session.Stats())
}

func (u *tui) releaseMovement(now time.Time) {
	if !u.moveDir.IsZero() && now.After(u.moveUntil) {
		u.moveDir = core.Vec2{}
		u.session.SetMovement(u.moveDir)
	}
}

func (u *tui) move(dir core.Vec2) {
	u.moveDir = dir
	u.moveUntil = time.Now().Add(moveHold)
	u.session.SetMovement(dir)
}

// handleInput returns false when the player quits
func (u *tui) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' && u.sound != nil {
			if u.sound.ToggleMute() {
				u.setMessage("Sound on")
			} else {
				u.setMessage("Sound off")
			}
			return true
		}
		switch u.mode {
		case modeBattle:
			u.battleKey(ev)
		case modeShipyard:
			u.shipyardKey(ev)
		case modeGameOver:
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'n') {
				u.mode = modeBattle
				u.texts = u.texts[:0]
				u.session.StartGame()
			}
		}

	case *tcell.EventMouse:
		if u.mode == modeBattle && ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if u.view.contains(x, y) {
				if e, ok := u.session.SelectAt(u.view.toWorld(x, y)); ok {
					u.logger.Debug("target selected", "entity", e)
				}
			}
		}

	case *tcell.EventResize:
		u.screen.Sync()
		u.handleResize()
	}
	return true
}

func (u *tui) battleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		u.move(core.Vec2{Y: 1})
	case tcell.KeyDown:
		u.move(core.Vec2{Y: -1})
	case tcell.KeyLeft:
		u.move(core.Vec2{X: -1})
	case tcell.KeyRight:
		u.move(core.Vec2{X: 1})
	case tcell.KeyTab:
		if _, ok := u.session.CycleTarget(); !ok {
			u.setMessage("No targets")
		}
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'w':
			u.move(core.Vec2{Y: 1})
		case 's':
			u.move(core.Vec2{Y: -1})
		case 'a':
			u.move(core.Vec2{X: -1})
		case 'd':
			u.move(core.Vec2{X: 1})
		case ' ':
			if _, err := u.session.FireVolley(); err != nil {
				u.logger.Debug("volley refused", "error", err)
			}
		case 'f':
			if u.session.ToggleAutoFire() {
				u.setMessage("Auto-fire on")
			} else {
				u.setMessage("Auto-fire off")
			}
		case '1', '2', '3':
			skill := component.Skill(r - '1')
			if err := u.session.ActivateSkill(skill); err != nil {
				u.setMessage("%s: %v", skill, err)
			}
		}
	}
}

func (u *tui) shipyardKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter {
		u.setSail()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch r := ev.Rune(); {
	case r == 'c':
		u.setSail()
	case r == 'r':
		var bonus int
		err := u.session.UpdateStats(func(s *component.PlayerStats) error {
			var err error
			bonus, err = shipyard.Repair(s)
			return err
		})
		switch {
		case err != nil:
			u.setMessage("%v", err)
		case bonus > 0:
			u.playCue(event.SoundRepair)
			u.setMessage("Repaired, %s from overflow", formatGold(bonus))
		default:
			u.playCue(event.SoundRepair)
			u.setMessage("Repaired")
		}
	case r >= '1' && r <= '9':
		i := int(r - '1')
		if i >= len(u.offers) {
			return
		}
		up := u.offers[i]
		err := u.session.UpdateStats(func(s *component.PlayerStats) error {
			return shipyard.Purchase(s, up.ID)
		})
		if err != nil {
			u.setMessage("%v", err)
			return
		}
		u.playCue(event.SoundCoin)
		u.setMessage("Bought %s", up.Name)
		u.offers = shipyard.Offers(u.session.Stats())
	}
}

func (u *tui) setSail() {
	if err := u.session.ResumeGame(); err != nil {
		u.setMessage("%v", err)
		return
	}
	u.mode = modeBattle
	u.texts = u.texts[:0]
}

func (u *tui) playCue(cue event.SoundCue) {
	if u.sound != nil {
		u.sound.Play(cue)
	}
}

// collectTexts keeps floating labels from the drained events and drops expired ones
func (u *tui) collectTexts(events []event.GameEvent, now time.Time) {
	kept := u.texts[:0]
	for _, t := range u.texts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	u.texts = kept

	for _, ev := range events {
		p, ok := ev.Payload.(*event.FloatingTextPayload)
		if ev.Type != event.EventFloatingText || !ok {
			continue
		}
		style := styleWater.Foreground(tcell.NewRGBColor(channel(p.Color.R), channel(p.Color.G), channel(p.Color.B)))
		if p.Critical {
			style = style.Bold(true)
		}
		u.texts = append(u.texts, floatingText{text: p.Text, pos: p.Position, style: style, expires: now.Add(p.Duration)})
	}
}

func channel(v float64) int32 {
	return int32(math.Round(max(0, min(1, v)) * 255))
}

func (u *tui) draw(now time.Time) {
	u.screen.Clear()
	f := u.frame

	u.drawWater()
	for _, o := range f.Obstacles {
		u.fill(o.Bounds, '▒', styleIsland)
	}
	for _, l := range f.Loot {
		u.drawLoot(l)
	}
	for _, s := range f.Ships {
		u.drawShip(s)
	}
	if f.Player != nil {
		u.fill(f.Player.Bounds, '@', stylePlayer)
		aim := f.Player.Position.Add(core.Vec2{
			X: math.Cos(f.Player.FiringAngle) * f.Player.Bounds.W,
			Y: math.Sin(f.Player.FiringAngle) * f.Player.Bounds.W,
		})
		x, y := u.view.toCell(aim)
		u.screen.SetContent(x, y, '+', nil, stylePlayer)
	}
	for _, p := range f.Projectiles {
		u.drawProjectile(p)
	}
	for _, t := range u.texts {
		x, y := u.view.toCell(t.pos)
		u.text(x-len([]rune(t.text))/2, y, t.text, t.style)
	}

	u.drawHUD(now)
	switch u.mode {
	case modeShipyard:
		u.drawShipyard()
	case modeGameOver:
		u.drawGameOver()
	}
	u.screen.Show()
}

func (u *tui) drawWater() {
	for y := u.view.originY; y < u.view.originY+u.view.rows; y++ {
		for x := u.view.originX; x < u.view.originX+u.view.cols; x++ {
			u.screen.SetContent(x, y, ' ', nil, styleWater)
		}
	}
}

func (u *tui) fill(r core.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := u.view.cells(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			u.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (u *tui) drawShip(s sim.ShipView) {
	style := styleShip
	switch {
	case s.Fire:
		style = styleShipFire
	case s.Smoke:
		style = styleShipSmoke
	}
	if s.Targeted {
		style = style.Reverse(true)
	}

	glyph := 's'
	switch s.Archetype {
	case component.ArchetypeChaser:
		glyph = 'c'
	case component.ArchetypeCaptain:
		glyph = 'C'
	case component.ArchetypeBoss:
		glyph = 'B'
	}
	u.fill(s.Bounds, glyph, style)

	if s.Targeted {
		x0, y0, _, _ := u.view.cells(s.Bounds)
		u.text(x0, y0-1, fmt.Sprintf("%s %d/%d", s.Name, s.HP, s.MaxHP), styleWater.Foreground(tcell.ColorYellow))
	}
}

func (u *tui) drawLoot(l sim.LootView) {
	x, y := u.view.toCell(l.Bounds.Center())
	switch l.Kind {
	case component.LootGold:
		u.screen.SetContent(x, y, '$', nil, styleGold)
	case component.LootBonusGold:
		u.screen.SetContent(x, y, '¤', nil, styleGold)
	case component.LootHealth:
		u.screen.SetContent(x, y, '+', nil, styleHealth)
	case component.LootFullRepair:
		u.screen.SetContent(x, y, 'H', nil, styleHealth)
	}
}

func (u *tui) drawProjectile(p sim.ProjectileView) {
	style := styleShotPlayer
	if p.Side == component.SideEnemy {
		style = styleShotEnemy
		if p.Boss {
			style = styleShotBoss
		}
	}
	glyph := '·'
	if p.Functional {
		glyph = 'o'
	}
	x, y := u.view.toCell(p.Bounds.Center())
	u.screen.SetContent(x, y, glyph, nil, style)
}

func (u *tui) drawHUD(now time.Time) {
	f := u.frame
	phase := f.Phase.String()
	if f.GameOver {
		phase = "sunk"
	}
	u.text(0, 0, fmt.Sprintf("Wave %d  %s  [%s]  %s", f.Wave, f.Label, phase, f.Elapsed.Truncate(time.Second)), styleHUD.Bold(true))
	u.text(0, 1, formatStats(f.Stats), styleHUD)

	row := u.height - hudBottom
	x := 0
	for i, sk := range f.Skills {
		label := fmt.Sprintf("[%d] %s %s ", i+1, sk.Skill, formatCooldown(sk.Cooldown))
		style := styleDim
		if sk.Active {
			style = styleSelected
		} else if sk.Ready {
			style = styleHUD
		}
		x = u.text(x, row, label, style)
	}
	auto := "off"
	if f.AutoFire {
		auto = "on"
	}
	u.text(x, row, "auto-fire "+auto, styleHUD)

	help := "wasd/arrows move  tab target  space fire  f auto  1-3 skills  m mute  q quit"
	if now.Before(u.messageUntil) {
		help = u.message
	}
	u.text(0, row+1, help, styleDim)
}

func (u *tui) drawShipyard() {
	stats := u.session.Stats()
	lines := []string{
		fmt.Sprintf("SHIPYARD  wave %d cleared", u.frame.Wave),
		formatStats(stats),
		"",
	}
	section := shipyard.SectionCount
	for i, o := range u.offers {
		if o.Section != section {
			section = o.Section
			lines = append(lines, section.String())
		}
		mark := " "
		if o.Affordable(stats) {
			mark = "*"
		}
		lines = append(lines, fmt.Sprintf(" %s[%d] %-22s %8s  %s", mark, i+1, o.Name, formatGold(o.Cost), o.Description))
	}
	if len(u.offers) == 0 {
		lines = append(lines, "Nothing left to buy")
	}
	lines = append(lines, "")
	if shipyard.NeedsRepair(stats) {
		lines = append(lines, " [r] Full repair "+formatGold(parameter.ShipyardRepairCost))
	}
	lines = append(lines, " [enter] Set sail")
	u.box(lines)
}

func (u *tui) drawGameOver() {
	lines := []string{"YOUR SHIP HAS SUNK", ""}
	var totals telemetry.Totals
	if u.recorder != nil {
		totals = u.recorder.Totals()
	}
	lines = append(lines, formatTotals(u.frame.Wave, totals)...)
	lines = append(lines, "", "[n] New game  [q] Quit")
	u.box(lines)
}

// box draws lines centered on a blank panel
func (u *tui) box(lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x0 := max(0, (u.width-w)/2)
	y0 := max(0, (u.height-h)/2)

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			u.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	for i, l := range lines {
		u.text(x0+2, y0+1+i, l, styleHUD)
	}
}

// text writes a string and returns the column after it
func (u *tui) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= 0 && x < u.width && y >= 0 && y < u.height {
			u.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}
