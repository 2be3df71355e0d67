package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                       { return g.id }
func (g *stubGame) Title() string                                    { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)                         {}
func (g *stubGame) Step(core.Clock, core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                              {}
func (g *stubGame) State() core.GameState                            { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterCreateList(t *testing.T) {
	Register(Info{ID: "zz_stub_b", Movement: "zz_wave"}, stub("zz_stub_b"))
	Register(Info{ID: "zz_stub_a", Title: "A", Movement: "zz_wave"}, stub("zz_stub_a"))

	if !Exists("zz_stub_a") {
		t.Error("Exists(zz_stub_a) = false, expected true")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create().ID() = %q, expected zz_stub_b", g.ID())
	}

	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create(unknown) should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestLookupTitle(t *testing.T) {
	Register(Info{ID: "zz_stub_title"}, stub("zz_stub_title"))
	Register(Info{ID: "zz_stub_named", Title: "Named"}, stub("zz_stub_named"))

	tests := []struct {
		id       string
		expected string
	}{
		{"zz_stub_title", "Stub zz_stub_title"},
		{"zz_stub_named", "Named"},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			info, ok := Lookup(tc.id)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tc.id)
			}
			if info.Title != tc.expected {
				t.Errorf("Lookup(%q).Title = %q, expected %q", tc.id, info.Title, tc.expected)
			}
		})
	}
}

func TestForMovement(t *testing.T) {
	Register(Info{ID: "zz_move_b", Movement: "zz_spiral"}, stub("zz_move_b"))
	Register(Info{ID: "zz_move_a", Movement: "zz_spiral"}, stub("zz_move_a"))

	info, ok := ForMovement("zz_spiral")
	if !ok {
		t.Fatal("ForMovement(zz_spiral) not found")
	}
	if info.ID != "zz_move_a" {
		t.Errorf("ForMovement(zz_spiral).ID = %q, expected zz_move_a", info.ID)
	}

	if _, ok := ForMovement("zz_none"); ok {
		t.Error("ForMovement(zz_none) should not be found")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Info{ID: "zz_stub_dup"}, stub("zz_stub_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "zz_stub_dup"}, stub("zz_stub_dup"))
}
