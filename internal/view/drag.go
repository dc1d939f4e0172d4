package view

// DragPhase is the current phase of a gallery drag interaction.
type DragPhase int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragPhase = iota
	// Dragging means an image has been picked up but is not over a target.
	Dragging
	// HoverTarget means the dragged image is over another image's position.
	HoverTarget
)

// DragState drives a single drag interaction, whether it comes from
// continuous pointer events or discrete touch events (press, move over a
// target, release). The element being dragged is the source; the element
// under the pointer is the target and is highlighted as the drop position.
type DragState struct {
	phase  DragPhase
	source int
	target int
}

// Phase returns the current phase.
func (d *DragState) Phase() DragPhase {
	return d.phase
}

// Source returns the index being dragged, or -1 when idle.
func (d *DragState) Source() int {
	if d.phase == DragIdle {
		return -1
	}
	return d.source
}

// Target returns the highlighted drop index, or -1 when there is none.
func (d *DragState) Target() int {
	if d.phase != HoverTarget {
		return -1
	}
	return d.target
}

// Start picks up the image at the given index.
func (d *DragState) Start(index int) {
	d.phase = Dragging
	d.source = index
	d.target = index
}

// Hover marks the index currently under the pointer. Hovering the source
// itself clears the target highlight instead of arming a no-op drop.
func (d *DragState) Hover(index int) {
	if d.phase == DragIdle {
		return
	}
	if index == d.source {
		d.phase = Dragging
		d.target = d.source
		return
	}
	d.phase = HoverTarget
	d.target = index
}

// Leave clears the current target highlight without ending the drag.
func (d *DragState) Leave() {
	if d.phase == HoverTarget {
		d.phase = Dragging
		d.target = d.source
	}
}

// Drop commits the drag. It yields the source and target indices only when
// the drag was released over a distinct target; otherwise ok is false and
// the ordering must not change. The state returns to idle either way.
func (d *DragState) Drop() (source, target int, ok bool) {
	source, target = d.source, d.target
	ok = d.phase == HoverTarget && source != target
	d.reset()
	return source, target, ok
}

// Cancel abandons the drag, e.g. on page navigation.
func (d *DragState) Cancel() {
	d.reset()
}

func (d *DragState) reset() {
	d.phase = DragIdle
	d.source = 0
	d.target = 0
}
