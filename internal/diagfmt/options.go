package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI severity coloring.
	Color bool
	// Context is the number of source lines printed around the primary span.
	Context int
}
