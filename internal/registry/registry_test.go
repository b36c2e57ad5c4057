package registry

import (
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/games/bounce"
)

type stubFrontend struct {
	id string
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }

func (s *stubFrontend) Run(_ *bounce.Game, _ Options) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered frontends should exist")
	}
	if Exists("missing") {
		t.Error("unregistered frontend should not exist")
	}

	fe, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fe.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", fe.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for an unknown ID")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Frontend { return &stubFrontend{id: "stub-z"} })
	Register("stub-m", func() Frontend { return &stubFrontend{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-m" {
			found = true
			if info.Title != "Stub stub-m" {
				t.Errorf("Title = %q, expected Stub stub-m", info.Title)
			}
		}
	}
	if !found {
		t.Error("stub-m missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}
