package scenes

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
	"time"

	"github.com/automoto/slimehop/assets"
	"github.com/automoto/slimehop/components"
	cfg "github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/shared/leveldata"
	"github.com/automoto/slimehop/sim"
	"github.com/automoto/slimehop/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const blinkPeriod = 100 * time.Millisecond

// Session is the state shared by every level played in one process.
type Session struct {
	Levels map[string]*leveldata.LevelData
	Seed   int64

	Runs     *storage.Store    // nil disables run history
	Settings *storage.Settings // nil disables saved settings
	Saved    storage.SavedSettings

	// Watcher reports edits to the loaded config file, nil when none.
	Watcher *cfg.Watcher

	Keyboard *Keyboard
	Sheets   *assets.SheetSet
	Sounds   *assets.SoundBank
}

// Names returns the level names in play order.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.Levels))
	for name := range s.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// next returns the level after name, wrapping around.
func (s *Session) next(name string) string {
	names := s.Names()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (s *Session) saveSettings() {
	if err := s.Settings.Save(&s.Saved); err != nil {
		log.Warn("Could not save settings", "error", err)
	}
}

// PlatformerScene plays one level until the player restarts or moves on.
type PlatformerScene struct {
	sceneChanger SceneChanger
	session      *Session
	name         string

	level *sim.Level
	loop  *sim.GameLoop
	tick  sim.Tick

	last     time.Time
	blink    time.Duration
	recorded bool
	best     string
	once     sync.Once
}

func NewPlatformerScene(sc SceneChanger, session *Session, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, session: session, name: levelName}
}

func (ps *PlatformerScene) configure() {
	s := ps.session
	if s.Keyboard == nil {
		s.Keyboard = NewKeyboard(nil)
	}
	if s.Sheets == nil {
		s.Sheets = assets.LoadSheets()
	}
	if s.Sounds == nil {
		s.Sounds = assets.NewSoundBank(assets.AudioContext())
		if s.Saved.SFXVolume > 0 {
			s.Sounds.SetVolume(s.Saved.SFXVolume)
		}
		s.Sounds.SetMuted(s.Saved.Muted)
	}

	data, ok := s.Levels[ps.name]
	if !ok {
		panic(fmt.Sprintf("level %q not found", ps.name))
	}

	ps.level = sim.NewLevel(data, sim.LevelOptions{Seed: s.Seed})
	ps.loop = sim.NewGameLoop(ps.level, s.Keyboard.Commands, cfg.Loop)
	ps.last = time.Now()

	if s.Saved.LastLevel != ps.name {
		s.Saved.LastLevel = ps.name
		s.saveSettings()
	}
	log.Info("Level started", "level", ps.name, "seed", s.Seed)
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)

	if justPressed(levelSelectKeys) {
		ps.sceneChanger.ChangeScene(NewLevelSelectScene(ps.sceneChanger, ps.session))
		return nil
	}

	if ps.reloadConfig() || justPressed(restartKeys) {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.session, ps.name))
		return nil
	}
	if justPressed(nextLevelKeys) {
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.session, ps.session.next(ps.name)))
		return nil
	}
	if justPressed(muteKeys) {
		sounds := ps.session.Sounds
		sounds.SetMuted(!sounds.Muted())
		ps.session.Saved.Muted = sounds.Muted()
		ps.session.saveSettings()
	}
	if justPressed(debugKeys) {
		cfg.Debug.DrawCollisionRects = !cfg.Debug.DrawCollisionRects
		cfg.Debug.ShowFPS = cfg.Debug.DrawCollisionRects
	}

	now := time.Now()
	elapsed := now.Sub(ps.last)
	ps.last = now
	ps.blink += elapsed

	ps.tick = ps.loop.Frame(elapsed)

	sounds := ps.session.Sounds
	sounds.PlayAll(ps.level.DrainTriggers())
	sounds.Update(float64(elapsed) / float64(time.Millisecond))

	if !ps.recorded && ps.level.Outcome() != components.OutcomePlaying {
		ps.recordRun()
	}
	return nil
}

// reloadConfig applies a changed config file. It reports whether the level
// should restart with the new values.
func (ps *PlatformerScene) reloadConfig() bool {
	w := ps.session.Watcher
	if w == nil {
		return false
	}
	select {
	case path := <-w.Events:
		if _, err := cfg.Load(path); err != nil {
			log.Warn("Config reload failed", "path", path, "error", err)
			return false
		}
		log.Info("Config reloaded", "path", path)
		return true
	case err := <-w.Errors:
		log.Warn("Config watcher error", "error", err)
	default:
	}
	return false
}

func (ps *PlatformerScene) recordRun() {
	ps.recorded = true
	summary := ps.level.Summary()
	log.Info("Level finished",
		"level", summary.Level,
		"outcome", summary.Outcome,
		"steps", summary.Steps,
		"coins", summary.Coins,
	)

	runs := ps.session.Runs
	if runs == nil {
		return
	}
	if _, err := runs.SaveRun(summary.Record()); err != nil {
		log.Warn("Could not save run", "error", err)
		return
	}
	best, ok, err := runs.BestRun(summary.Level)
	if err != nil {
		log.Warn("Could not read best run", "error", err)
		return
	}
	if ok {
		ps.best = "Best " + best.Result()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.level == nil {
		return
	}
	screen.Fill(cfg.SkyBlue)

	frame := ps.level.Snapshot(ps.tick.Alpha)
	tiles := ps.level.Grid().Tiles()
	sheets := ps.session.Sheets

	drawTiles(screen, tiles, sheets.Tile(), frame.Camera)
	drawEntities(screen, &frame, sheets, (ps.blink/blinkPeriod)%2 == 0)
	drawPops(screen, &frame, sheets)
	if cfg.Debug.DrawCollisionRects {
		drawDebug(screen, &frame, tiles)
	}
	drawHUD(screen, frame.HUD, ps.session.Sounds.Muted())
	drawOutcome(screen, frame.Outcome, ps.best)
}
