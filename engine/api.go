//-----------------------------------------------------------------------------
/*

Host-Facing History Operations

Thin wrappers so a host only needs the Editor handle, not a second object,
for history operations.

*/
//-----------------------------------------------------------------------------

package engine

// HistoryAdd commits line to history. Returns false if history is
// disabled or line repeats the most recent entry.
func (e *Editor) HistoryAdd(line string) bool {
	return e.history.Add(line)
}

// HistorySetMaxLen resizes the history store.
func (e *Editor) HistorySetMaxLen(n int) {
	e.history.SetMaxLen(n)
}

// HistorySave writes the history to path.
func (e *Editor) HistorySave(path string) error {
	return e.history.Save(path)
}

// HistoryLoad replaces the history with the contents of path.
func (e *Editor) HistoryLoad(path string) error {
	return e.history.Load(path)
}
