package render

// Layer is one drawing pass of the frame
type Layer interface {
	Render(ctx *Context)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx *Context) bool
}
