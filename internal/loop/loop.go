// Package loop runs a game session on an ANSI terminal: it reads keys,
// advances the world one frame at a time and redraws the screen.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/world"
)

// Options configures a terminal session.
type Options struct {
	Settings     config.Settings
	TermSizeFunc draw.TermSizeFunc // Defaults to draw.DefaultTermSizeFunc
	Logger       *log.Logger       // Defaults to a discarding logger
	Rand         *rand.Rand        // Passed through to the world
}

// session is the per-run state of the terminal loop.
type session struct {
	sim      *world.Simulation
	stream   *input.Stream
	canvas   *draw.Canvas
	out      *draw.ChunkWriter
	sizeFunc draw.TermSizeFunc
	logger   *log.Logger
	snap     world.Snapshot
	running  bool
}

// Run plays one game on the terminal behind r and w with the standard
// Input → Update → Draw cycle. It returns nil when the player quits, the
// input stream closes or ctx is done, and an error if a frame fails.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = config.DiscardLogger()
	}
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	sim, err := world.New(world.Options{Settings: opts.Settings, Rand: opts.Rand, Logger: logger})
	if err != nil {
		return fmt.Errorf("new world: %w", err)
	}

	s := &session{
		sim:      sim,
		stream:   input.StartStream(r),
		canvas:   draw.NewCanvas(1, 1, opts.Settings.FieldWidth, opts.Settings.FieldHeight),
		out:      draw.NewChunkWriter(w),
		sizeFunc: sizeFunc,
		logger:   logger,
		snap:     sim.Snapshot(),
		running:  true,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	logger.Info("game started")

	lastTime := time.Now()
	for s.running {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		controls := input.ReadInput(s.stream)
		if controls.Quit {
			logger.Info("player quit", "survived", s.snap.Elapsed)
			break
		}

		// ===== UPDATE PHASE =====
		if err := s.update(dt, controls); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := config.TargetFrameTime - time.Since(frameStart)
		select {
		case <-ctx.Done():
			logger.Info("session cancelled", "reason", ctx.Err())
			s.running = false
		case <-time.After(max(wait, 0)):
		}
	}

	draw.ClearScreen(w)
	return nil
}

// update advances the world while the ship is alive.
func (s *session) update(dt float64, controls input.Controls) error {
	if s.snap.State == world.GameOver {
		return nil
	}
	snap, err := s.sim.AdvanceFrame(dt, controls)
	if err != nil {
		return fmt.Errorf("frame %d: %w", s.snap.Frame+1, err)
	}
	if snap.State == world.GameOver {
		s.logger.Info("game over", "survived", fmt.Sprintf("%.1fs", snap.Elapsed), "frames", snap.Frame)
	}
	s.snap = snap
	return nil
}
