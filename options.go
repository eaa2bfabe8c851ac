package svgedit

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Export rendering: identity view, box-scan circles
//	r := svgedit.NewRenderer()
//
//	// Interactive rendering
//	r := svgedit.NewRenderer(
//	    svgedit.WithView(view),
//	    svgedit.WithCircleAlgorithm(svgedit.Midpoint),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	view      View
	circle    CircleAlgorithm
	highlight RGB
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		circle:    BoxScan,
		highlight: Red,
	}
}

// WithView sets the document-to-device transform. The default is the
// identity view.
func WithView(v View) RendererOption {
	return func(o *rendererOptions) {
		o.view = v
	}
}

// WithCircleAlgorithm selects how circles are filled.
func WithCircleAlgorithm(a CircleAlgorithm) RendererOption {
	return func(o *rendererOptions) {
		o.circle = a
	}
}

// WithHighlight sets the color of the selection highlight.
func WithHighlight(c RGB) RendererOption {
	return func(o *rendererOptions) {
		o.highlight = c
	}
}
