package registry

import (
	"testing"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

type stubDemo struct {
	id string
}

func (s stubDemo) ID() string                                   { return s.id }
func (s stubDemo) Title() string                                { return "Stub " + s.id }
func (s stubDemo) Defaults() core.RuntimeConfig                 { return core.DefaultConfig() }
func (s stubDemo) Attach(*engine.Framebuffer) error             { return nil }
func (s stubDemo) HandleEvent(*engine.Framebuffer, core.Event)  {}
func (s stubDemo) Update(*engine.Framebuffer, float64, float64) {}
func (s stubDemo) Render(*engine.DrawHandle)                    {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Demo { return stubDemo{id: "zz-stub"} })
	Register("aa-stub", func() Demo { return stubDemo{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Error("Exists(zz-stub) = false, expected true")
	}

	d, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create(aa-stub) failed: %v", err)
	}
	if d.ID() != "aa-stub" {
		t.Errorf("ID() = %q, expected aa-stub", d.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "Stub zz-stub" || info.Defaults.Width != 320 {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() does not contain zz-stub")
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Demo { return stubDemo{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Demo { return stubDemo{id: "dup-stub"} })
}
