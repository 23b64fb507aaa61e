package view

// Cursor and viewport arithmetic. The invariant maintained by every
// operation here, for any pageHeight >= 1:
//
//	0 <= first <= cursor <= first+pageHeight, cursor <= lastRow
//
// With an empty projection both indices collapse to 0 and everything is a
// no-op. Out-of-range requests clamp, they never error.

func (e *Engine) Cursor() int     { return e.cursor }
func (e *Engine) First() int      { return e.first }
func (e *Engine) PageHeight() int { return e.pageHeight }

// RelativeRow is the cursor's offset inside the viewport.
func (e *Engine) RelativeRow() int { return e.cursor - e.first }

func (e *Engine) MoveUp() {
	if !e.Ready() || e.cursor == 0 {
		return
	}
	e.cursor--
	if e.cursor < e.first {
		e.first = e.cursor
	}
	e.notify()
}

func (e *Engine) MoveDown() {
	last := e.lastRow()
	if !e.Ready() || last < 0 || e.cursor >= last {
		return
	}
	e.cursor++
	if e.cursor > e.first+e.pageHeight {
		e.first++
	}
	e.notify()
}

// PageDown jumps a full page keeping the cursor's offset in the viewport.
func (e *Engine) PageDown() {
	last := e.lastRow()
	if !e.Ready() || last < 0 || e.cursor == last {
		return
	}
	rel := e.RelativeRow()
	e.cursor = min(last, e.cursor+e.pageHeight)
	e.first = max(0, e.cursor-rel)
	e.notify()
}

func (e *Engine) PageUp() {
	if !e.Ready() || e.lastRow() < 0 {
		return
	}
	rel := e.RelativeRow()
	e.cursor = max(0, e.cursor-e.pageHeight)
	e.first = max(0, e.cursor-rel)
	e.notify()
}

func (e *Engine) FirstPage() {
	if !e.Ready() || e.lastRow() < 0 {
		return
	}
	e.cursor, e.first = 0, 0
	e.notify()
}

func (e *Engine) LastPage() {
	last := e.lastRow()
	if !e.Ready() || last < 0 {
		return
	}
	e.cursor = last
	e.first = max(0, last-e.pageHeight)
	e.notify()
}

// MoveToLine is an absolute jump: the viewport top snaps to the target
// line. Used by goto and by search hits.
func (e *Engine) MoveToLine(n int) {
	last := e.lastRow()
	if !e.Ready() || last < 0 {
		return
	}
	n = max(0, min(n, last))
	e.cursor = n
	e.first = n
	e.notify()
}

// The viewport-edge jumps move the cursor without moving the viewport.

func (e *Engine) MoveToFirstViewportLine() {
	if !e.Ready() || e.lastRow() < 0 {
		return
	}
	e.cursor = e.first
	e.notify()
}

func (e *Engine) MoveToLastViewportLine() {
	last := e.lastRow()
	if !e.Ready() || last < 0 {
		return
	}
	e.cursor = min(e.first+e.pageHeight, last)
	e.notify()
}

func (e *Engine) MoveToCenterViewportLine() {
	last := e.lastRow()
	if !e.Ready() || last < 0 {
		return
	}
	e.cursor = min(e.first+e.pageHeight/2, last)
	e.notify()
}

// Resize re-derives the page height from a new display area and, when the
// cursor falls outside the shrunk band, pulls the viewport up to it.
func (e *Engine) Resize(pageHeight int) {
	if pageHeight < 1 {
		pageHeight = 1
	}
	e.pageHeight = pageHeight
	if last := e.lastRow(); last >= 0 && e.cursor > last {
		e.cursor = last
	}
	if e.cursor > e.first+e.pageHeight {
		e.first = max(0, e.cursor-e.pageHeight)
	}
	if e.cursor < e.first {
		e.first = e.cursor
	}
	e.notify()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
