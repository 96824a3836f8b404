package worm

import (
	"testing"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/registry"
)

func TestRegisteredVariants(t *testing.T) {
	for _, preset := range config.Presets {
		id := GameID(preset)
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		if got := registry.Title(id); got != GameTitle(preset) {
			t.Errorf("Title(%s) = %q, expected %q", id, got, GameTitle(preset))
		}
	}
}

func TestRegistryCreatesPreset(t *testing.T) {
	game, err := registry.Create("worm_hard")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	g, ok := game.(*Game)
	if !ok {
		t.Fatalf("Create() returned %T", game)
	}
	if g.Config().PartsPerFrame != 4 {
		t.Errorf("PartsPerFrame = %d, expected 4", g.Config().PartsPerFrame)
	}
}

func TestRegistryFactoryReportsConfigErrors(t *testing.T) {
	SetConfigPath("/nonexistent/worm.yaml")
	defer SetConfigPath("")

	if _, err := registry.Create("worm_easy"); err == nil {
		t.Error("Create() should fail when the config file is missing")
	}
}
