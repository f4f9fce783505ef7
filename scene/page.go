package scene

import (
	"fmt"
	"time"

	"github.com/pthm-cable/driftfield/config"
)

// Page is one of the two portfolio pages.
type Page int

const (
	PageHome Page = iota
	PageWorkspace
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageWorkspace:
		return "workspace"
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// ParsePage parses a page name as given on the command line.
func ParsePage(s string) (Page, error) {
	switch s {
	case "", "home":
		return PageHome, nil
	case "workspace", "vscode":
		return PageWorkspace, nil
	}
	return PageHome, fmt.Errorf("unknown page %q", s)
}

// loaderDuration returns how long the page shows its loader overlay.
func loaderDuration(cfg *config.Config, p Page) time.Duration {
	if p == PageWorkspace {
		return cfg.Derived.WorkspaceLoader
	}
	return cfg.Derived.HomeLoader
}

// homeSection is a section of the home page, top offset in page pixels.
type homeSection struct {
	ID    string
	Title string
	Top   float64
}

var homeSections = []homeSection{
	{ID: "home", Title: "Home", Top: 0},
	{ID: "about", Title: "About", Top: 800},
	{ID: "experience", Title: "Experience", Top: 1600},
	{ID: "projects", Title: "Projects", Top: 2400},
	{ID: "contact", Title: "Contact", Top: 3200},
}

// homeHeight is the scrollable height of the home page.
const homeHeight = 4000.0
