package bounce

import "github.com/vovakirdan/tui-bounce/internal/core"

// Start begins a new round: every body returns to spawn, the score and
// round clock restart and the speed limit drops back to its base.
// Starting while a round is active restarts it.
func (w *World) Start() {
	w.resetRound()
	w.startArmed = false
	w.Session.Mode = ModeActive
	w.Session.Rounds++
}

// endRound finishes the active round and returns to the menu. The world is
// reset right away so the idle screen shows spawn positions.
func (w *World) endRound() RoundResult {
	res := RoundResult{
		Round:      w.Session.Rounds,
		Score:      w.Session.Score,
		Elapsed:    w.Elapsed(),
		SpeedLimit: w.Session.SpeedLimit,
	}

	w.Session.LastScore = w.Session.Score
	w.Session.Mode = ModeIdle
	w.resetRound()
	return res
}

// advanceClock counts one active tick and raises the speed limit when the
// schedule says so. The limit never goes down within a round.
func (w *World) advanceClock() {
	w.Session.Ticks++
	w.Session.SpeedLimit = max(w.Session.SpeedLimit, w.schedule.Limit(w.Elapsed()))
}

// pointerDown arms the start control when pressed inside it on the menu.
func (w *World) pointerDown(x, y float64) {
	w.startArmed = w.Session.Mode == ModeIdle && w.startBox().Contains(x, y)
}

// pointerUp completes a click on the start control. The press and the
// release must both land inside it.
func (w *World) pointerUp(x, y float64) bool {
	armed := w.startArmed
	w.startArmed = false
	if armed && w.Session.Mode == ModeIdle && w.startBox().Contains(x, y) {
		w.Start()
		return true
	}
	return false
}

// startBox returns the start control's area in arena units.
func (w *World) startBox() core.Box {
	b := w.Config.StartButton
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}
