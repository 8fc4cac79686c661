package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of source lines shown around the primary span.
	Context int8
}

// JSONOpts configures JSON output of tokens.
type JSONOpts struct {
	IncludePositions bool // add resolved line/col next to byte spans
}
