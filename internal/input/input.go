// Package input maps raw terminal bytes to per-frame ship controls.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report key repeats, not key releases.
const keyHoldDuration = 30 * time.Millisecond

// Controls is the input sampled for one frame.
type Controls struct {
	RotateLeft    bool
	RotateRight   bool
	ThrustForward bool
	ThrustBack    bool
	Fire          bool
	Quit          bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	forward time.Time
	back    time.Time
	fire    time.Time
	quit    bool // Latched: quitting is never undone
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream closes when r returns an error (including io.EOF).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the controls held at this instant. A closed stream reports Quit.
func ReadInput(s *Stream) Controls {
	now := time.Now()
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	c := s.controls(now)
	if s.closed {
		c.Quit = true
	}
	return c
}

// apply parses the collected bytes and updates key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.forward = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.back = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// controls builds the frame's controls: keys are held if seen within keyHoldDuration.
func (s *Stream) controls(now time.Time) Controls {
	return Controls{
		RotateLeft:    now.Sub(s.state.left) < keyHoldDuration,
		RotateRight:   now.Sub(s.state.right) < keyHoldDuration,
		ThrustForward: now.Sub(s.state.forward) < keyHoldDuration,
		ThrustBack:    now.Sub(s.state.back) < keyHoldDuration,
		Fire:          now.Sub(s.state.fire) < keyHoldDuration,
		Quit:          s.state.quit,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		state.quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.forward = now
	case 's', 'S', 'k', 'K':
		state.back = now
	case ' ':
		state.fire = now
	}
}
