package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/LeJamon/xrplmodel/internal/config"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// printer writes command results in the configured format.
type printer struct {
	w      io.Writer
	format string

	title *color.Color
	on    *color.Color
	off   *color.Color
	warn  *color.Color
}

func newPrinter(w io.Writer, out config.OutputConfig) *printer {
	p := &printer{
		w:      w,
		format: out.Format,
		title:  color.New(color.Bold),
		on:     color.New(color.FgGreen),
		off:    color.New(color.FgHiBlack),
		warn:   color.New(color.FgYellow),
	}
	if !out.Color {
		for _, c := range []*color.Color{p.title, p.on, p.off, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

// print writes v as json or yaml, or calls text for the text format.
func (p *printer) print(v interface{}, text func()) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

func (p *printer) onOff(on bool) string {
	if on {
		return p.on.Sprint("true")
	}
	return p.off.Sprint("false")
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}
