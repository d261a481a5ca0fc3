package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/world"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func testOptions() Options {
	return Options{
		Settings:     config.Default(),
		TermSizeFunc: fixedSize(80, 24),
		Rand:         rand.New(rand.NewSource(1)),
	}
}

// runWithTimeout runs the loop in the background and fails the test if it
// does not return in time.
func runWithTimeout(t *testing.T, ctx context.Context, r io.Reader, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(r), &out, opts)
	}()

	select {
	case err := <-done:
		return out.String(), err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return "", nil
	}
}

func TestRunReturnsOnClosedInput(t *testing.T) {
	out, err := runWithTimeout(t, context.Background(), strings.NewReader(""), testOptions())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(out, "\033[?25l") {
		t.Error("cursor not hidden at start")
	}
	if !strings.Contains(out, "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRunReturnsOnQuitKey(t *testing.T) {
	if _, err := runWithTimeout(t, context.Background(), strings.NewReader("q"), testOptions()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	if _, err := runWithTimeout(t, ctx, pr, testOptions()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	opts := testOptions()
	opts.Settings.ShipRadius = 0

	_, err := runWithTimeout(t, context.Background(), strings.NewReader(""), opts)
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Errorf("Run() error = %v, want ErrInvalidSettings", err)
	}
}

func TestRunReportsTerminalSizeError(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sizeErr := errors.New("no tty")
	opts := testOptions()
	opts.TermSizeFunc = func() (int, int, error) { return 0, 0, sizeErr }

	_, err := runWithTimeout(t, context.Background(), pr, opts)
	if !errors.Is(err, sizeErr) {
		t.Errorf("Run() error = %v, want %v", err, sizeErr)
	}
}

func newTestSession(t *testing.T, out io.Writer) *session {
	t.Helper()
	s := config.Default()
	s.AsteroidSpawnInterval = 1e6
	sim, err := world.New(world.Options{Settings: s, Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatal(err)
	}
	return &session{
		sim:      sim,
		canvas:   draw.NewCanvas(1, 1, s.FieldWidth, s.FieldHeight),
		out:      draw.NewChunkWriter(out),
		sizeFunc: fixedSize(80, 24),
		logger:   config.DiscardLogger(),
		snap:     sim.Snapshot(),
		running:  true,
	}
}

func TestGameOverScreen(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	a, err := object.NewAsteroid(s.sim.Ship().Position, r2.Point{}, 20, 20)
	if err != nil {
		t.Fatal(err)
	}
	s.sim.AddAsteroid(a)

	if err := s.update(1.0/60, input.Controls{}); err != nil {
		t.Fatal(err)
	}
	if s.snap.State != world.GameOver {
		t.Fatalf("State = %v, want game over", s.snap.State)
	}
	frame := s.snap.Frame

	// Further updates leave the world alone.
	if err := s.update(1.0/60, input.Controls{ThrustForward: true}); err != nil {
		t.Fatal(err)
	}
	if s.snap.Frame != frame {
		t.Errorf("Frame = %d after game over, want %d", s.snap.Frame, frame)
	}

	if err := s.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), gameOverText) || !strings.Contains(out.String(), quitHint) {
		t.Error("game over screen missing its message")
	}
}

func TestRunningScreenHasNoGameOver(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	if err := s.update(1.0/60, input.Controls{}); err != nil {
		t.Fatal(err)
	}
	if err := s.drawFrame(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), gameOverText) {
		t.Error("running screen shows game over")
	}
	if !strings.Contains(out.String(), "\033[H\033[2J") {
		t.Error("frame does not start with a clear")
	}
}
