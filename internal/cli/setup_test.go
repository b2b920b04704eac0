package cli

import (
	"testing"
)

func noApp() (*App, error) { return nil, nil }

func TestSetupRunCmd_Flags(t *testing.T) {
	cmd := newSetupRunCmd(noApp)

	for _, name := range []string{"no-deps", "skip-installed"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("setup run: missing flag --%s", name)
		}
	}
}

func TestSetupAllCmd_Flags(t *testing.T) {
	cmd := newSetupAllCmd(noApp)

	for _, name := range []string{"no-deps", "skip-installed"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("setup all: missing flag --%s", name)
		}
	}

	if err := cmd.ParseFlags([]string{"--no-deps", "--skip-installed"}); err != nil {
		t.Fatalf("unexpected error parsing flags: %v", err)
	}
}
