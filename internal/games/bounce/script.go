package bounce

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Script is a scripted input timeline for headless runs.
//
// Syntax is a comma-separated list of entries:
//
//	up@0-240      hold up from tick 0, release at tick 240
//	down@300      hold down from tick 300 until the run ends
//	confirm@10    press confirm at tick 10
type Script struct {
	entries []scriptEntry
}

type scriptEntry struct {
	action core.Action
	from   uint64
	to     uint64
	open   bool // No release tick
}

var scriptActions = map[string]core.Action{
	"up":      core.ActionMoveUp,
	"down":    core.ActionMoveDown,
	"confirm": core.ActionConfirm,
}

// ParseScript parses a script. An empty string is an empty script.
func ParseScript(s string) (Script, error) {
	var sc Script
	for _, raw := range strings.Split(s, ",") {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}

		name, ticks, ok := strings.Cut(item, "@")
		if !ok {
			return Script{}, fmt.Errorf("script entry %q: missing @tick", item)
		}
		action, ok := scriptActions[strings.ToLower(name)]
		if !ok {
			return Script{}, fmt.Errorf("script entry %q: unknown action %q", item, name)
		}

		e := scriptEntry{action: action}
		fromStr, toStr, ranged := strings.Cut(ticks, "-")
		from, err := strconv.ParseUint(fromStr, 10, 64)
		if err != nil {
			return Script{}, fmt.Errorf("script entry %q: bad start tick: %w", item, err)
		}
		e.from = from

		switch {
		case action == core.ActionConfirm:
			if ranged {
				return Script{}, fmt.Errorf("script entry %q: confirm takes a single tick", item)
			}
			e.to = from
		case ranged:
			to, err := strconv.ParseUint(toStr, 10, 64)
			if err != nil {
				return Script{}, fmt.Errorf("script entry %q: bad end tick: %w", item, err)
			}
			if to <= from {
				return Script{}, fmt.Errorf("script entry %q: end tick must be after start tick", item)
			}
			e.to = to
		default:
			e.open = true
		}

		sc.entries = append(sc.entries, e)
	}

	sort.SliceStable(sc.entries, func(i, j int) bool {
		return sc.entries[i].from < sc.entries[j].from
	})
	return sc, nil
}

// Len returns the number of entries.
func (s Script) Len() int {
	return len(s.entries)
}

// EventsAt returns the input edges that happen at the given tick.
// Releases come before presses so a key can be re-pressed on the same tick.
func (s Script) EventsAt(tick uint64) []core.InputEvent {
	var ups, downs []core.InputEvent
	for _, e := range s.entries {
		switch {
		case e.action == core.ActionConfirm:
			if e.from == tick {
				downs = append(downs, core.KeyDownEvent(e.action), core.KeyUpEvent(e.action))
			}
		case e.from == tick:
			downs = append(downs, core.KeyDownEvent(e.action))
		case !e.open && e.to == tick:
			ups = append(ups, core.KeyUpEvent(e.action))
		}
	}
	return append(ups, downs...)
}
