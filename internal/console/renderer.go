package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/tablewise/posterm/internal/render"
)

// terminalRenderer implements render.Renderer on a plain text terminal.
type terminalRenderer struct {
	out io.Writer
}

func newTerminalRenderer(out io.Writer) *terminalRenderer {
	return &terminalRenderer{out: out}
}

func (r *terminalRenderer) Render(s render.Screen) {
	fmt.Fprintln(r.out)
	if s.Title != "" {
		fmt.Fprintln(r.out, s.Title)
		fmt.Fprintln(r.out, strings.Repeat("=", len(s.Title)))
	}
	if s.Detail != nil {
		r.printCard(*s.Detail)
	}
	if len(s.Cards) == 0 {
		if s.Empty != "" {
			fmt.Fprintln(r.out, s.Empty)
		}
		return
	}
	for _, card := range s.Cards {
		r.printCard(card)
	}
}

func (r *terminalRenderer) printCard(c render.Card) {
	fmt.Fprintln(r.out, c.Header)
	for _, line := range c.Lines {
		fmt.Fprintln(r.out, "  "+line)
	}
}

func (r *terminalRenderer) Notify(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *terminalRenderer) Error(msg string) {
	fmt.Fprintln(r.out, "! "+msg)
}

// Loading spins until the returned stop function is called.
func (r *terminalRenderer) Loading(label string) func() {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()
	return func() {
		close(done)
		bar.Finish()
	}
}
