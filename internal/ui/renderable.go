package ui

// Renderable is the minimal contract every visual component satisfies:
// a pure function from its configured properties to terminal output.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function to the Renderable interface.
type RenderableFunc func() string

// View invokes the wrapped function.
func (f RenderableFunc) View() string {
	return f()
}
