package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-worm/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub_b", "Stub B", func() (Game, error) { return &stubGame{id: "zz_stub_b"}, nil })
	Register("zz_stub_a", "Stub A", func() (Game, error) { return &stubGame{id: "zz_stub_a"}, nil })

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	posB, posA := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_stub_b":
			posB = i
		case "zz_stub_a":
			posA = i
		}
	}
	if posB < 0 || posA < 0 || posB > posA {
		t.Errorf("List() should keep registration order, got %v", ids)
	}

	if !Exists("zz_stub_a") {
		t.Error("Exists should report registered games")
	}
	if Title("zz_stub_b") != "Stub B" {
		t.Errorf("Title() = %q", Title("zz_stub_b"))
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("created game ID = %q", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("zz_broken", "Broken", func() (Game, error) { return nil, boom })

	if _, err := Create("zz_broken"); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })
}
