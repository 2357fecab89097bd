package desktop

// Size is a width/height pair in terminal cells
type Size struct {
	Width  int
	Height int
}

// Position is a left/top pair in terminal cells
type Position struct {
	Left int
	Top  int
}

// Geometry is the placement of a window on the screen
type Geometry struct {
	Position
	Size
}

// Contains reports whether the cell (x, y) lies inside the geometry
func (g Geometry) Contains(x, y int) bool {
	return x >= g.Left && x < g.Left+g.Width && y >= g.Top && y < g.Top+g.Height
}

// Insets describes the chrome the maximized geometry must leave free
type Insets struct {
	Margin int // gap on every side
	TopBar int // rows reserved above the desktop
	Dock   int // rows reserved below the desktop
}

// maximized returns the full-viewport-minus-insets geometry for a viewport
func (in Insets) maximized(viewport Size) Geometry {
	return Geometry{
		Position: Position{
			Left: in.Margin,
			Top:  in.TopBar + in.Margin,
		},
		Size: Size{
			Width:  max(1, viewport.Width-2*in.Margin),
			Height: max(1, viewport.Height-in.TopBar-in.Dock-2*in.Margin),
		},
	}
}
