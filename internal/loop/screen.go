package loop

import (
	"fmt"

	"github.com/tomz197/asteroids-arcade/internal/world"
)

const (
	gameOverText = "GAME OVER"
	quitHint     = "press q to quit"
)

// drawFrame clears the screen, draws every body on the canvas and overlays
// the game over message.
func (s *session) drawFrame() error {
	termWidth, termHeight, err := s.sizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	s.canvas.Resize(termWidth, termHeight)
	s.canvas.Clear()

	for _, a := range s.snap.Asteroids {
		s.canvas.DrawCircle(a.Position, a.Radius)
	}
	for _, p := range s.snap.Projectiles {
		s.canvas.Set(p.Position)
	}
	outline := s.snap.Ship.Outline()
	s.canvas.DrawPolygon(outline[:], s.snap.State == world.Running)

	s.out.ClearScreen()
	if err := s.canvas.Render(s.out); err != nil {
		return err
	}
	s.drawUI()
	return s.out.Flush()
}

// drawUI writes the game over message after the canvas so it sits on top.
func (s *session) drawUI() {
	if s.snap.State != world.GameOver {
		return
	}
	col, row := s.canvas.LogicalToTerminal(s.snap.Field.Center())
	s.out.WriteAt(col-len(gameOverText)/2, row, gameOverText)
	s.out.WriteAt(col-len(quitHint)/2, row+2, quitHint)
}
