package main

import (
	"testing"

	"github.com/san-kum/breathe/internal/config"
)

func TestTechniqueIDPrecedence(t *testing.T) {
	cases := []struct {
		name string
		args []string
		cfg  *config.Config
		want string
	}{
		{"argument wins over config", []string{"box"}, &config.Config{Technique: "coherent"}, "box"},
		{"config used without argument", nil, &config.Config{Technique: "coherent"}, "coherent"},
		{"empty both opens selector", nil, config.DefaultConfig(), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := techniqueID(tc.args, tc.cfg); got != tc.want {
				t.Fatalf("techniqueID(%v, %+v) = %q, want %q", tc.args, tc.cfg, got, tc.want)
			}
		})
	}
}
