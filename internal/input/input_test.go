package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestApplyKeys(t *testing.T) {
	tests := []struct {
		name     string
		bytes    string
		expected Controls
	}{
		{"nothing", "", Controls{}},
		{"wasd_left", "a", Controls{RotateLeft: true}},
		{"wasd_right", "d", Controls{RotateRight: true}},
		{"wasd_forward", "w", Controls{ThrustForward: true}},
		{"wasd_back", "s", Controls{ThrustBack: true}},
		{"vim_style", "jl", Controls{RotateLeft: true, RotateRight: true}},
		{"space_fires", " ", Controls{Fire: true}},
		{"arrow_up", "\x1b[A", Controls{ThrustForward: true}},
		{"arrow_down", "\x1b[B", Controls{ThrustBack: true}},
		{"arrow_right", "\x1b[C", Controls{RotateRight: true}},
		{"arrow_left", "\x1b[D", Controls{RotateLeft: true}},
		{"combination", "w \x1b[D", Controls{ThrustForward: true, Fire: true, RotateLeft: true}},
		{"quit", "q", Controls{Quit: true}},
		{"ctrl_c", "\x03", Controls{Quit: true}},
		{"unknown_keys", "xyz", Controls{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{}
			now := time.Now()
			s.apply([]byte(tt.bytes), now)
			if got := s.controls(now); got != tt.expected {
				t.Errorf("controls = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.apply([]byte(" a"), now)

	if c := s.controls(now.Add(keyHoldDuration / 2)); !c.Fire || !c.RotateLeft {
		t.Errorf("keys should still be held, got %+v", c)
	}
	if c := s.controls(now.Add(keyHoldDuration)); c.Fire || c.RotateLeft {
		t.Errorf("keys should be released, got %+v", c)
	}
}

func TestQuitIsLatched(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.apply([]byte("q"), now)
	if c := s.controls(now.Add(time.Hour)); !c.Quit {
		t.Error("quit should stay set")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.After(2 * time.Second)
	for {
		if c := ReadInput(s); c.Quit {
			return
		}
		select {
		case <-deadline:
			t.Fatal("ReadInput never reported Quit for a closed stream")
		case <-time.After(time.Millisecond):
		}
	}
}
