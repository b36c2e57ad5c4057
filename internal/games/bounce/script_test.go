package bounce

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing tick", "up"},
		{"unknown action", "jump@3"},
		{"bad start", "up@x"},
		{"bad end", "up@3-y"},
		{"end before start", "down@10-5"},
		{"empty range", "down@10-10"},
		{"ranged confirm", "confirm@1-4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseScript(tc.input); err == nil {
				t.Errorf("ParseScript(%q) should fail", tc.input)
			}
		})
	}
}

func TestParseScriptEmpty(t *testing.T) {
	for _, in := range []string{"", " ", ",,"} {
		sc, err := ParseScript(in)
		if err != nil {
			t.Fatalf("ParseScript(%q): %v", in, err)
		}
		if sc.Len() != 0 {
			t.Errorf("ParseScript(%q).Len() = %d, expected 0", in, sc.Len())
		}
	}
}

func TestScriptEventsAt(t *testing.T) {
	sc, err := ParseScript("down@5, UP@0-5, confirm@2, down@9-12")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", sc.Len())
	}

	tests := []struct {
		tick uint64
		want []core.InputEvent
	}{
		{0, []core.InputEvent{core.KeyDownEvent(core.ActionMoveUp)}},
		{1, nil},
		{2, []core.InputEvent{core.KeyDownEvent(core.ActionConfirm), core.KeyUpEvent(core.ActionConfirm)}},
		// Release of up comes before the press of down
		{5, []core.InputEvent{core.KeyUpEvent(core.ActionMoveUp), core.KeyDownEvent(core.ActionMoveDown)}},
		{9, []core.InputEvent{core.KeyDownEvent(core.ActionMoveDown)}},
		{12, []core.InputEvent{core.KeyUpEvent(core.ActionMoveDown)}},
		{100, nil},
	}

	for _, tc := range tests {
		got := sc.EventsAt(tc.tick)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("EventsAt(%d) = %v, expected %v", tc.tick, got, tc.want)
		}
	}
}
