package app

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/photo-carousel/internal/control"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want control.Action
	}{
		{sdl.K_ESCAPE, control.ActionQuit},
		{sdl.K_q, control.ActionQuit},
		{sdl.K_SPACE, control.ActionToggle},
		{sdl.K_p, control.ActionToggle},
		{sdl.K_r, control.ActionReset},
		{sdl.K_HOME, control.ActionReset},
		{sdl.K_m, control.ActionMute},
		{sdl.K_F12, control.ActionNone},
		{sdl.K_a, control.ActionNone},
	}
	for _, tt := range tests {
		if got := keyAction(tt.key); got != tt.want {
			t.Errorf("keyAction(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMusicLevel(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		configured float64
		want       float64
	}{
		{"mute playing music", 0.7, 0.7, 0},
		{"mute after volume change", 0.3, 0.7, 0},
		{"restore configured level", 0, 0.7, 0.7},
		{"restore full when configured silent", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := musicLevel(tt.current, tt.configured); got != tt.want {
				t.Errorf("musicLevel(%v, %v) = %v, want %v", tt.current, tt.configured, got, tt.want)
			}
		})
	}
}
