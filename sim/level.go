package sim

import (
	"sort"

	"github.com/automoto/slimehop/actors"
	"github.com/automoto/slimehop/components"
	"github.com/automoto/slimehop/config"
	"github.com/automoto/slimehop/physics"
	"github.com/automoto/slimehop/shared/gamemath"
	"github.com/automoto/slimehop/shared/leveldata"
	"github.com/automoto/slimehop/storage"
	"github.com/automoto/slimehop/systems"
	"github.com/automoto/slimehop/systems/factory"
	"github.com/automoto/slimehop/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

type LevelOptions struct {
	Seed int64

	// view size used to clamp the camera; zero means the window size
	ViewWidth, ViewHeight float64
}

// Level is one play session of a loaded map. It is single-threaded: every
// method must be called from the goroutine driving the loop.
type Level struct {
	name   string
	world  donburi.World
	grid   *physics.TileGrid
	player *actors.Player
	opts   LevelOptions
	fps    FPSCounter
}

// Summary describes a finished or running session.
type Summary struct {
	Level     string
	Seed      int64
	Outcome   components.Outcome
	Steps     int
	ElapsedMs float64
	Coins     int
	Life      int
	Jumps     int
	Hits      int
}

func NewLevel(data *leveldata.LevelData, opts LevelOptions) *Level {
	if opts.ViewWidth == 0 {
		opts.ViewWidth = float64(config.C.Width)
	}
	if opts.ViewHeight == 0 {
		opts.ViewHeight = float64(config.C.Height)
	}

	world := donburi.NewWorld()
	levelEntry := factory.CreateLevel(world, data, opts.Seed)
	playerEntry := factory.PopulateLevel(world, data)

	l := &Level{
		name:   data.Name,
		world:  world,
		grid:   components.Level.Get(levelEntry).Grid,
		player: components.Player.Get(playerEntry).Controller,
		opts:   opts,
	}

	log.Debug("Level loaded",
		"name", data.Name,
		"tiles", len(data.Tiles),
		"slimes", len(data.Slimes),
		"coins", len(data.Coins),
		"seed", opts.Seed,
	)

	// start the camera on the player instead of panning in from the origin
	systems.UpdateCamera(world, 0, 1, opts.ViewWidth, opts.ViewHeight)
	return l
}

func (l *Level) Name() string            { return l.name }
func (l *Level) World() donburi.World    { return l.world }
func (l *Level) Grid() *physics.TileGrid { return l.grid }
func (l *Level) Player() *actors.Player  { return l.player }

func (l *Level) Outcome() components.Outcome {
	return systems.CurrentOutcome(l.world)
}

// FixedStep advances the simulation by one fixed step. It does nothing once
// the level has been won or lost.
func (l *Level) FixedStep(cmds config.CommandSet) {
	if l.Outcome() != components.OutcomePlaying {
		return
	}
	systems.SetCommands(l.world, cmds)
	systems.RunFixedStep(l.world, config.Loop.FrameTimeMs())
}

// Present advances everything driven by wall-clock time: animations, effects
// and the camera.
func (l *Level) Present(elapsedMs, alpha float64) {
	l.fps.Tick(msToDuration(elapsedMs))
	systems.AdvanceAnimations(l.world, elapsedMs)
	systems.UpdateEffects(l.world, elapsedMs)
	systems.UpdateCamera(l.world, elapsedMs, alpha, l.opts.ViewWidth, l.opts.ViewHeight)
}

// DrainTriggers returns the triggers emitted since the last call.
func (l *Level) DrainTriggers() []config.Trigger {
	return systems.DrainSFX(l.world)
}

// Snapshot captures the world for rendering, with bodies blended alpha of
// the way from their previous to their current fixed-step position.
func (l *Level) Snapshot(alpha float64) Frame {
	var frame Frame

	for e := range components.Actor.Iter(l.world) {
		ctrl := components.Actor.Get(e).Controller
		body := ctrl.Body()
		x, y := body.Interpolated(alpha)
		view := EntityView{
			Kind:   ctrl.Kind(),
			Sheet:  components.Sprite.Get(e).Sheet,
			State:  config.Idle,
			X:      x,
			Y:      y,
			Facing: body.Facing,
			Rect:   gamemath.Rect{X: x + body.OffsetX, Y: y + body.OffsetY, W: body.W, H: body.H},
		}
		if f, err := ctrl.Animation().CurrentFrame(); err == nil {
			view.Frame = f
		}
		if p, ok := ctrl.(*actors.Player); ok {
			view.State = p.State()
			view.Flash = p.InGracePeriod()
		}
		frame.Entities = append(frame.Entities, view)
	}
	// goal, coins, slimes, then the player on top
	sort.SliceStable(frame.Entities, func(i, j int) bool {
		return frame.Entities[i].Kind > frame.Entities[j].Kind
	})

	for e := range components.Pop.Iter(l.world) {
		pop := components.Pop.Get(e)
		frame.Pops = append(frame.Pops, PopView{X: pop.X, Y: pop.Y - pop.Value, Frame: pop.Frame})
	}

	if entry, ok := components.Camera.First(l.world); ok {
		camera := components.Camera.Get(entry)
		frame.Camera = gamemath.Point{
			X: camera.Position.X + camera.Offset.X,
			Y: camera.Position.Y + camera.Offset.Y,
		}
	}

	frame.HUD = HUD{Life: l.player.Life, Coins: l.player.Coins, FPS: l.fps.FPS()}
	frame.Outcome = l.Outcome()
	return frame
}

func (l *Level) Summary() Summary {
	s := Summary{
		Level:   l.name,
		Seed:    l.opts.Seed,
		Outcome: l.Outcome(),
		Coins:   l.player.Coins,
		Life:    l.player.Life,
	}
	if entry, ok := tags.Player.First(l.world); ok {
		stats := components.Player.Get(entry)
		s.Jumps = stats.Jumps
		s.Hits = stats.Hits
	}
	if entry, ok := components.Level.First(l.world); ok {
		level := components.Level.Get(entry)
		s.Steps = level.Steps
		s.ElapsedMs = level.ElapsedMs
	}
	return s
}

// Record converts the summary into a run history row.
func (s Summary) Record() storage.Run {
	return storage.Run{
		Level:     s.Level,
		Seed:      s.Seed,
		Outcome:   s.Outcome.String(),
		Steps:     s.Steps,
		ElapsedMs: int64(s.ElapsedMs),
		Coins:     s.Coins,
		Life:      s.Life,
		Jumps:     s.Jumps,
		Hits:      s.Hits,
	}
}
