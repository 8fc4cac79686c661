package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"monkey/internal/diag"
	"monkey/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
)

// Pretty formats diagnostics for humans. Expects bag.Sort() to have been
// called when stable ordering matters. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the offending source line with a caret underline, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		for _, n := range d.Notes {
			writeHeader(w, fs, diag.SevInfo, diag.UnknownCode, n.Span, n.Msg, opts)
			writeContext(w, fs, n.Span, opts)
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	sevText := sev.String()
	if opts.Color {
		switch sev {
		case diag.SevError:
			sevText = errColor.Sprint(sevText)
		case diag.SevWarning:
			sevText = warnColor.Sprint(sevText)
		default:
			sevText = infoColor.Sprint(sevText)
		}
	}

	if code == diag.UnknownCode {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, start.Line, start.Col, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n", f.Path, start.Line, start.Col, sevText, code.ID(), msg)
}

func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if opts.Context < 0 {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	line := f.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// caret underline for the primary line only
	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", int(start.Col-1)),
		strings.Repeat("^", int(width)))
}
