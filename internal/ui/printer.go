package ui

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// Printer writes run output: success lines and the summary to out, error
// lines to errOut. Safe for concurrent use by multiple goroutines.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	outSt  styles
	errSt  styles
}

// NewPrinter creates a Printer. Colour is decided per writer, see ColorEnabled.
func NewPrinter(out, errOut io.Writer, noColor bool) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		outSt:  newStyles(newRenderer(out, ColorEnabled(out, noColor))),
		errSt:  newStyles(newRenderer(errOut, ColorEnabled(errOut, noColor))),
	}
}

// FileValid prints "✓ <path>".
func (p *Printer) FileValid(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, p.outSt.success.Render(SymbolCheck+" "+path))
}

// RunSucceeded prints the closing summary.
func (p *Printer) RunSucceeded(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, p.outSt.success.Render(fmt.Sprintf("All %d GeoJSON files are valid!", count)))
}

// RunFailed prints one error line per failure. Errors joined with
// errors.Join are printed one by one.
func (p *Printer) RunFailed(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			p.printError(e)
		}
		return
	}
	p.printError(err)
}

func (p *Printer) printError(err error) {
	var gerr *gjhint.Error
	if !errors.As(err, &gerr) {
		p.errorLine("An unexpected error occurred: " + err.Error())
		return
	}

	switch gerr.Kind {
	case gjhint.KindIO, gjhint.KindInvalidJSON:
		p.errorLine(gerr.Kind.String() + ": " + gerr.Error())
	case gjhint.KindInvalidGeoJSON:
		msg := gerr.Message
		if gerr.Cause != nil {
			msg += ": " + gerr.Cause.Error()
		}
		p.errorLine(gerr.Kind.String() + ": " + msg)
		for _, iss := range gerr.Issues {
			line := fmt.Sprintf("  %s: %s", iss.Location(), iss.Message)
			if iss.Level == gjhint.LevelMessage {
				fmt.Fprintln(p.errOut, p.errSt.muted.Render(line))
			} else {
				fmt.Fprintln(p.errOut, line)
			}
		}
	case gjhint.KindUnexpected:
		p.errorLine(gerr.Error())
	default:
		panic(fmt.Sprintf("unhandled error kind %d", gerr.Kind))
	}
}

func (p *Printer) errorLine(msg string) {
	fmt.Fprintln(p.errOut, p.errSt.err.Render(SymbolCross+" "+msg))
}

var _ gjhint.Reporter = (*Printer)(nil)
