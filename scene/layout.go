package scene

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/driftfield/effects"
	"github.com/pthm-cable/driftfield/workspace"
)

// Workspace chrome, in pixels.
const (
	activityWidth = 48
	sidebarWidth  = 220
	tabHeight     = 35
	tabWidth      = 150
	statusHeight  = 22
	fileListTop   = 40
	fileRowHeight = 26
	statusButton  = 90
)

// Home page chrome, in pixels.
const (
	headerHeight         = 70
	headerHeightScrolled = 56
	navItemWidth         = 110
	ctaWidth             = 180
	ctaHeight            = 48
	ctaTop               = 520
	cardHeight           = 260
	cardGap              = 24
	cardMargin           = 80
	cardCount            = 3
	menuButtonWidth      = 56
	menuWidth            = 200
	menuRowHeight        = 44
)

func rect(x, y, w, h float64) effects.Rect {
	return effects.Rect{Min: r2.Vec{X: x, Y: y}, W: w, H: h}
}

// hit returns the index of the first rect containing p, or -1.
func hit(rects []effects.Rect, p r2.Vec) int {
	for i, r := range rects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

type workspaceLayout struct {
	Activity []effects.Rect
	Sidebar  effects.Rect
	Files    []effects.Rect
	// Overlay is set when the sidebar floats over the editor on a narrow window.
	Overlay bool
	Tabs    []effects.Rect
	Content effects.Rect
	Status  effects.Rect
	Boot    effects.Rect
	Melody  effects.Rect
	Theme   effects.Rect
}

func layoutWorkspace(w, h float64, narrow, sidebarOpen bool) workspaceLayout {
	var l workspaceLayout
	for i := range workspace.Activities {
		l.Activity = append(l.Activity, rect(0, float64(i)*activityWidth, activityWidth, activityWidth))
	}

	left := float64(activityWidth)
	if !narrow || sidebarOpen {
		l.Sidebar = rect(activityWidth, 0, sidebarWidth, h-statusHeight)
		for i := range workspace.Files() {
			l.Files = append(l.Files, rect(activityWidth, fileListTop+float64(i)*fileRowHeight, sidebarWidth, fileRowHeight))
		}
		if !narrow {
			left += sidebarWidth
		}
	}
	l.Overlay = narrow && sidebarOpen

	for i := range workspace.Files() {
		l.Tabs = append(l.Tabs, rect(left+float64(i)*tabWidth, 0, tabWidth, tabHeight))
	}
	l.Content = rect(left, tabHeight, w-left, h-tabHeight-statusHeight)

	l.Status = rect(0, h-statusHeight, w, statusHeight)
	l.Theme = rect(w-statusButton, h-statusHeight, statusButton, statusHeight)
	l.Melody = rect(w-2*statusButton, h-statusHeight, statusButton, statusHeight)
	l.Boot = rect(w-3*statusButton, h-statusHeight, statusButton, statusHeight)
	return l
}

func (l workspaceLayout) buttons() []effects.Rect {
	return []effects.Rect{l.Boot, l.Melody, l.Theme}
}

type homeLayout struct {
	Header effects.Rect
	// Menu is the nav toggle, only set on a narrow window.
	Menu  effects.Rect
	Nav   []effects.Rect
	Theme effects.Rect
	CTA   effects.Rect
	Cards []effects.Rect
}

// layoutHome lays out the home page in screen space for the given scroll.
// A narrow window folds the nav into a dropdown column under a toggle,
// with no nav rects while the menu is closed.
func layoutHome(w, h, scrollY float64, scrolled, narrow, menuOpen bool) homeLayout {
	var l homeLayout

	hh := float64(headerHeight)
	if scrolled {
		hh = headerHeightScrolled
	}
	l.Header = rect(0, 0, w, hh)
	if narrow {
		l.Menu = rect(w-menuButtonWidth, 0, menuButtonWidth, hh)
		l.Theme = rect(l.Menu.Min.X-navItemWidth, 0, navItemWidth, hh)
		if menuOpen {
			left := max(0, w-menuWidth)
			for i := range homeSections {
				l.Nav = append(l.Nav, rect(left, hh+float64(i)*menuRowHeight, w-left, menuRowHeight))
			}
		}
	} else {
		navLeft := w - float64(len(homeSections))*navItemWidth
		for i := range homeSections {
			l.Nav = append(l.Nav, rect(navLeft+float64(i)*navItemWidth, 0, navItemWidth, hh))
		}
		l.Theme = rect(navLeft-navItemWidth, 0, navItemWidth, hh)
	}

	l.CTA = rect(w/2-ctaWidth/2, ctaTop-scrollY, ctaWidth, ctaHeight)

	cardW := (w - 2*cardMargin - (cardCount-1)*cardGap) / cardCount
	top := sectionTop("projects") + 140 - scrollY
	for i := 0; i < cardCount; i++ {
		l.Cards = append(l.Cards, rect(cardMargin+float64(i)*(cardW+cardGap), top, cardW, cardHeight))
	}
	return l
}

func sectionTop(id string) float64 {
	for _, s := range homeSections {
		if s.ID == id {
			return s.Top
		}
	}
	return 0
}

// maxScroll returns the furthest the home page scrolls for a viewport of height h.
func maxScroll(h float64) float64 {
	return max(0, homeHeight-h)
}
