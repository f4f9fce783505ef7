// Package workspace models the editor-styled portfolio page: a file tree,
// tabs, a status bar and panels that are filled on first open.
package workspace

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// ErrUnknownFile is returned when a file name is not in the tree.
var ErrUnknownFile = errors.New("unknown file")

// File is one entry of the file tree.
type File struct {
	Name string
	Ext  string
	Type string // status bar label
}

// Label returns the tab label, e.g. "about.md".
func (f File) Label() string {
	return f.Name + "." + f.Ext
}

var files = []File{
	{Name: "index", Ext: "js", Type: "JavaScript"},
	{Name: "about", Ext: "md", Type: "Markdown"},
	{Name: "experience", Ext: "json", Type: "JSON"},
	{Name: "projects", Ext: "jsx", Type: "JSX"},
	{Name: "skills", Ext: "ts", Type: "TypeScript"},
	{Name: "contact", Ext: "sh", Type: "Shell Script"},
}

// Activities are the icons of the activity bar.
var Activities = []string{"explorer", "search", "source-control", "extensions"}

// Entry is one card of a panel.
type Entry struct {
	Heading string   `yaml:"heading"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Text    string   `yaml:"text"`
	Tags    []string `yaml:"tags"`
}

// Panel is the rendered content of one file.
type Panel struct {
	Breadcrumb string  `yaml:"breadcrumb"`
	Title      string  `yaml:"title"`
	Entries    []Entry `yaml:"entries"`
}

// Workspace holds the page state. It is not safe for concurrent use.
type Workspace struct {
	library    map[string]Panel
	filled     map[string]Panel
	active     string
	hash       string
	status     string
	activity   int
	sidebar    bool
	breakpoint int
}

// New creates the workspace with index active. Panels are parsed from the
// embedded content but not filled until first opened.
func New(breakpoint int) (*Workspace, error) {
	library := make(map[string]Panel)
	if err := yaml.Unmarshal(contentYAML, &library); err != nil {
		return nil, fmt.Errorf("parsing workspace content: %w", err)
	}
	for _, f := range files {
		if _, ok := library[f.Name]; !ok {
			return nil, fmt.Errorf("workspace content: missing panel %q", f.Name)
		}
	}
	return &Workspace{
		library:    library,
		filled:     make(map[string]Panel),
		active:     files[0].Name,
		status:     files[0].Type,
		breakpoint: breakpoint,
	}, nil
}

// Files returns the file tree in display order.
func Files() []File {
	out := make([]File, len(files))
	copy(out, files)
	return out
}

func lookup(name string) (File, bool) {
	for _, f := range files {
		if f.Name == name {
			return f, true
		}
	}
	return File{}, false
}

// Switch makes name the active tab, tree entry and panel, updates the
// status bar and hash, and fills the panel if it has not been filled yet.
// An unknown name leaves the state unchanged.
func (w *Workspace) Switch(name string) error {
	f, ok := lookup(name)
	if !ok {
		return fmt.Errorf("switching to %q: %w", name, ErrUnknownFile)
	}
	w.active = f.Name
	w.status = f.Type
	w.hash = f.Name
	w.fill(f.Name)
	slog.Debug("workspace file", "file", f.Name)
	return nil
}

// Open restores the page from a location hash ("#skills" or "skills").
// Without a hash, the index panel is filled. An unknown hash also falls
// back to index and returns the error.
func (w *Workspace) Open(hash string) error {
	name := strings.TrimPrefix(hash, "#")
	if name == "" {
		w.fill(files[0].Name)
		return nil
	}
	if err := w.Switch(name); err != nil {
		w.fill(files[0].Name)
		return err
	}
	return nil
}

func (w *Workspace) fill(name string) {
	if _, done := w.filled[name]; done {
		return
	}
	w.filled[name] = w.library[name]
}

// ClickFile switches to name from the file tree. On narrow windows the
// sidebar closes afterwards.
func (w *Workspace) ClickFile(name string, width int) error {
	if err := w.Switch(name); err != nil {
		return err
	}
	if width <= w.breakpoint {
		w.sidebar = false
	}
	return nil
}

// ClickActivity selects an activity icon. On narrow windows it also toggles
// the sidebar.
func (w *Workspace) ClickActivity(index, width int) {
	if index < 0 || index >= len(Activities) {
		return
	}
	w.activity = index
	if width <= w.breakpoint {
		w.sidebar = !w.sidebar
	}
}

// ClickOverlay closes the sidebar.
func (w *Workspace) ClickOverlay() {
	w.sidebar = false
}

// Resize closes the sidebar once the window is wider than the breakpoint.
func (w *Workspace) Resize(width int) {
	if width > w.breakpoint {
		w.sidebar = false
	}
}

// Active returns the active file.
func (w *Workspace) Active() File {
	f, _ := lookup(w.active)
	return f
}

// Status returns the status bar file type.
func (w *Workspace) Status() string {
	return w.status
}

// Hash returns the location hash, without '#'.
func (w *Workspace) Hash() string {
	return w.hash
}

// Panel returns the filled panel for name. Unfilled panels report false.
func (w *Workspace) Panel(name string) (Panel, bool) {
	p, ok := w.filled[name]
	return p, ok
}

// Filled returns how many panels have been filled.
func (w *Workspace) Filled() int {
	return len(w.filled)
}

// Activity returns the selected activity icon index.
func (w *Workspace) Activity() int {
	return w.activity
}

// SidebarOpen reports whether the sidebar overlay is shown.
func (w *Workspace) SidebarOpen() bool {
	return w.sidebar
}
