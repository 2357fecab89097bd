/*
Package desktop implements the window manager behind the portfolio desktop.

The Registry holds one Record per declared panel. The Controller opens,
focuses, hides, maximizes and drags those records. Neither type knows about
terminals or rendering; the app package translates input events into
Controller calls and draws whatever the records say.

	reg := desktop.NewRegistry([]desktop.Spec{{ID: "about", Title: "About", Natural: desktop.Size{Width: 60, Height: 18}}})
	ctl := desktop.NewController(reg, desktop.Options{CascadeStep: 2})
	ctl.SetViewport(120, 40)
	ctl.Open("about")
*/
package desktop

import "sort"

// Spec declares a panel at startup
type Spec struct {
	ID      string
	Title   string
	Natural Size // rendered size used until an explicit size is applied
}

// Record tracks the display state of one panel
type Record struct {
	ID    string
	Title string

	Visible bool
	Active  bool
	Z       int

	// Positioned is false until the first Open places the window
	Positioned bool
	Geometry   Geometry

	Natural Size
	SizeSet bool

	Maximized bool
	Saved     *Geometry // snapshot taken on maximize
}

// size returns the explicit size when set, otherwise the natural one
func (r *Record) size() Size {
	if r.SizeSet {
		return r.Geometry.Size
	}
	return r.Natural
}

// Registry holds every declared window record in declaration order
type Registry struct {
	order   []string
	records map[string]*Record
}

// NewRegistry creates a record per Spec. Duplicate IDs keep the first declaration.
func NewRegistry(specs []Spec) *Registry {
	r := &Registry{records: make(map[string]*Record, len(specs))}
	for _, s := range specs {
		if _, dup := r.records[s.ID]; dup || s.ID == "" {
			continue
		}
		r.order = append(r.order, s.ID)
		r.records[s.ID] = &Record{
			ID:       s.ID,
			Title:    s.Title,
			Natural:  s.Natural,
			Geometry: Geometry{Size: s.Natural},
		}
	}
	return r
}

// Lookup returns the record for id
func (r *Registry) Lookup(id string) (*Record, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// IDs returns the declared IDs in order
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// VisibleCount returns how many windows are currently shown
func (r *Registry) VisibleCount() int {
	n := 0
	for _, id := range r.order {
		if r.records[id].Visible {
			n++
		}
	}
	return n
}

// Stack returns the visible records from bottom to top
func (r *Registry) Stack() []*Record {
	var out []*Record
	for _, id := range r.order {
		if rec := r.records[id]; rec.Visible {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}
