package engine

import "github.com/gdamore/tcell/v2"

// PressEdge turns mouse reports into single activations
// With drag reporting enabled the terminal repeats Button1 while it is held;
// only the report that starts a press counts
type PressEdge struct {
	down bool
}

// Press reports whether ev is the first Button1 report of a new press
// A report without Button1 ends the current press
func (p *PressEdge) Press(ev *tcell.EventMouse) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		p.down = false
		return false
	}
	if p.down {
		return false
	}
	p.down = true
	return true
}

// Held reports whether a press is in progress
func (p *PressEdge) Held() bool {
	return p.down
}

// Reset forgets any press in progress
func (p *PressEdge) Reset() {
	p.down = false
}
