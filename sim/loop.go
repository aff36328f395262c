package sim

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/slimehop/config"
	"github.com/charmbracelet/log"
)

// Stepper is the simulation the loop drives.
type Stepper interface {
	FixedStep(cmds config.CommandSet)
	Present(elapsedMs, alpha float64)
}

// InputSource supplies the commands for the next fixed step.
type InputSource func() config.CommandSet

// Tick reports what one presentation frame did.
type Tick struct {
	Steps int
	Alpha float64
}

// GameLoop runs fixed steps at the configured rate and one presentation
// advance per frame.
type GameLoop struct {
	stepper  Stepper
	input    InputSource
	clock    *Clock
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(stepper Stepper, input InputSource, cfg config.LoopConfig) *GameLoop {
	if input == nil {
		input = func() config.CommandSet { return 0 }
	}
	return &GameLoop{
		stepper:  stepper,
		input:    input,
		clock:    NewClock(cfg.FrameTime(), cfg.MaxSkip),
		tickRate: cfg.TickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Clock() *Clock {
	return g.clock
}

// Frame is one presentation tick: it runs the fixed steps owed for elapsed
// wall-clock time, then advances presentation once with that same elapsed.
func (g *GameLoop) Frame(elapsed time.Duration) Tick {
	steps, alpha := g.clock.Advance(elapsed)
	for i := 0; i < steps; i++ {
		g.stepper.FixedStep(g.input())
	}
	g.stepper.Present(float64(elapsed)/float64(time.Millisecond), alpha)
	return Tick{Steps: steps, Alpha: alpha}
}

// Run drives Frame from a ticker until ctx is cancelled or Stop is called.
// It is for hosts without their own frame callback.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.clock.FrameTime)
	defer ticker.Stop()

	log.Info("Game loop started", "tick_rate", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info("Game loop stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-g.stopChan:
			log.Info("Game loop stopped")
			return nil
		case now := <-ticker.C:
			g.Frame(now.Sub(last))
			last = now
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
