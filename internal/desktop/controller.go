package desktop

// BaseZ is the stacking value before the first focus
const BaseZ = 100

// VisibilityFunc is called when a window is shown or hidden
type VisibilityFunc func(id string, visible bool)

// Options configures a Controller
type Options struct {
	// CascadeStep offsets each newly placed window by this many cells
	// per already visible window, on both axes.
	CascadeStep int
	Insets      Insets
}

// Controller mutates window records in response to user actions.
// Every method is a no-op for unknown IDs.
type Controller struct {
	reg  *Registry
	opts Options

	viewport Size
	z        int
	active   string

	dragging bool
	dragID   string
	dragOff  Position

	observers map[string][]VisibilityFunc
}

// NewController creates a controller over reg
func NewController(reg *Registry, opts Options) *Controller {
	return &Controller{
		reg:       reg,
		opts:      opts,
		z:         BaseZ,
		observers: make(map[string][]VisibilityFunc),
	}
}

// Registry returns the underlying registry
func (c *Controller) Registry() *Registry {
	return c.reg
}

// SetViewport records the screen size used for centering and maximize
func (c *Controller) SetViewport(width, height int) {
	c.viewport = Size{Width: width, Height: height}
}

// Viewport returns the last recorded screen size
func (c *Controller) Viewport() Size {
	return c.viewport
}

// Observe registers fn for visibility changes of id
func (c *Controller) Observe(id string, fn VisibilityFunc) {
	c.observers[id] = append(c.observers[id], fn)
}

// Active returns the focused window ID
func (c *Controller) Active() (string, bool) {
	return c.active, c.active != ""
}

// ZOrder returns the last assigned stacking value
func (c *Controller) ZOrder() int {
	return c.z
}

// Dragging reports whether a drag is in progress and for which window
func (c *Controller) Dragging() (string, bool) {
	return c.dragID, c.dragging
}

// Open shows a window, placing it on first open, and focuses it
func (c *Controller) Open(id string) {
	rec, ok := c.reg.Lookup(id)
	if !ok {
		return
	}

	if !rec.Positioned {
		offset := c.opts.CascadeStep * c.reg.VisibleCount()
		size := rec.size()
		rec.Geometry.Left = (c.viewport.Width-size.Width)/2 + offset
		rec.Geometry.Top = (c.viewport.Height-size.Height)/2 + offset
		rec.Positioned = true
	}

	c.setVisible(rec, true)
	c.Focus(id)
}

// Focus raises a window above every other and marks it active
func (c *Controller) Focus(id string) {
	rec, ok := c.reg.Lookup(id)
	if !ok {
		return
	}
	for _, other := range c.reg.records {
		other.Active = false
	}
	rec.Active = true
	c.z++
	rec.Z = c.z
	c.active = id
}

// Close hides a window without discarding its record
func (c *Controller) Close(id string) {
	if rec, ok := c.reg.Lookup(id); ok {
		c.setVisible(rec, false)
	}
}

// Minimize hides a window; there is no separate minimized state
func (c *Controller) Minimize(id string) {
	c.Close(id)
}

// ToggleMaximize switches a window between its normal and maximized geometry
func (c *Controller) ToggleMaximize(id string) {
	rec, ok := c.reg.Lookup(id)
	if !ok {
		return
	}

	if !rec.Maximized {
		saved := Geometry{Position: rec.Geometry.Position, Size: rec.size()}
		rec.Saved = &saved
		rec.Geometry = c.opts.Insets.maximized(c.viewport)
		rec.SizeSet = true
		rec.Maximized = true
		return
	}

	rec.Maximized = false
	if rec.Saved == nil {
		return
	}
	rec.Geometry = *rec.Saved
	rec.SizeSet = true
}

// StartDrag begins moving a window from pointer position (x, y).
// Presses on a window control button are ignored.
func (c *Controller) StartDrag(id string, x, y int, onControl bool) {
	if onControl {
		return
	}
	rec, ok := c.reg.Lookup(id)
	if !ok {
		return
	}
	c.dragging = true
	c.dragID = id
	c.dragOff = Position{Left: x - rec.Geometry.Left, Top: y - rec.Geometry.Top}
	c.Focus(id)
}

// DragTo moves the dragged window so the grab point follows the pointer
func (c *Controller) DragTo(x, y int) {
	if !c.dragging {
		return
	}
	rec, ok := c.reg.Lookup(c.dragID)
	if !ok {
		return
	}
	rec.Geometry.Left = x - c.dragOff.Left
	rec.Geometry.Top = y - c.dragOff.Top
}

// EndDrag stops any drag in progress
func (c *Controller) EndDrag() {
	c.dragging = false
	c.dragID = ""
}

// Press focuses a window after a mouse down anywhere on it
func (c *Controller) Press(id string) {
	c.Focus(id)
}

// CycleFocus moves focus to the next (or previous) visible window in declaration order
func (c *Controller) CycleFocus(reverse bool) {
	var visible []string
	for _, id := range c.reg.order {
		if c.reg.records[id].Visible {
			visible = append(visible, id)
		}
	}
	if len(visible) == 0 {
		return
	}

	idx := -1
	for i, id := range visible {
		if id == c.active {
			idx = i
			break
		}
	}
	switch {
	case idx == -1:
		idx = 0
	case reverse:
		idx = (idx - 1 + len(visible)) % len(visible)
	default:
		idx = (idx + 1) % len(visible)
	}
	c.Focus(visible[idx])
}

// TopAt returns the topmost visible window containing (x, y)
func (c *Controller) TopAt(x, y int) (*Record, bool) {
	stack := c.reg.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Geometry.Contains(x, y) {
			return stack[i], true
		}
	}
	return nil, false
}

func (c *Controller) setVisible(rec *Record, visible bool) {
	if rec.Visible == visible {
		return
	}
	rec.Visible = visible
	for _, fn := range c.observers[rec.ID] {
		fn(rec.ID, visible)
	}
}
