package effects

// ScrollProgress returns how far the page is scrolled, in percent. A page
// that does not scroll reports 0.
func ScrollProgress(scrollTop, scrollHeight, clientHeight float64) float64 {
	scrollable := scrollHeight - clientHeight
	if scrollable <= 0 {
		return 0
	}
	pct := scrollTop / scrollable * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// HeaderScrolled reports whether the header switches to its compact style.
func HeaderScrolled(scrollY, threshold float64) bool {
	return scrollY > threshold
}

// Parallax returns the vertical translation of a parallax element.
func Parallax(scrollY, speed float64) float64 {
	return -(scrollY * speed)
}

// Section is a navigable page section.
type Section struct {
	ID  string
	Top float64
}

// ActiveSection returns the id of the last section whose top, less offset,
// has been scrolled past. Sections must be in page order. Returns "" when
// none qualifies.
func ActiveSection(sections []Section, scrollY, offset float64) string {
	current := ""
	for _, s := range sections {
		if scrollY >= s.Top-offset {
			current = s.ID
		}
	}
	return current
}

// Reveal tracks fade-in sections. A section becomes visible once at least
// threshold of its height is inside the viewport and stays visible.
type Reveal struct {
	threshold float64
	visible   map[string]bool
}

// NewReveal creates a tracker with the given visibility threshold in [0, 1].
func NewReveal(threshold float64) *Reveal {
	return &Reveal{threshold: threshold, visible: make(map[string]bool)}
}

// Observe updates visibility for a section spanning [top, top+height) with
// the viewport at [scrollY, scrollY+viewH). Returns true the first time the
// section becomes visible.
func (r *Reveal) Observe(id string, top, height, scrollY, viewH float64) bool {
	if r.visible[id] || height <= 0 {
		return false
	}
	lo := max(top, scrollY)
	hi := min(top+height, scrollY+viewH)
	if hi <= lo {
		return false
	}
	if (hi-lo)/height >= r.threshold {
		r.visible[id] = true
		return true
	}
	return false
}

// Visible reports whether id has been revealed.
func (r *Reveal) Visible(id string) bool {
	return r.visible[id]
}
