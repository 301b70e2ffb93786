package prompt

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/powerline/internal/logger"
	"github.com/alexisbeaulieu97/powerline/internal/terminal"
)

// Module inspects the environment and appends zero or more segments.
//
// Implementations must not fail the prompt: internal errors become a visible
// error segment instead of being returned.
type Module interface {
	AppendSegments(out *Line)
}

// Prompt is an ordered list of modules.
type Prompt struct {
	modules []Module
}

// New returns an empty prompt.
func New() *Prompt {
	return &Prompt{}
}

// Add registers a module. Modules run in the order they were added.
func (p *Prompt) Add(m Module) {
	if m == nil {
		return
	}
	p.modules = append(p.modules, m)
}

// Len returns the number of registered modules.
func (p *Prompt) Len() int {
	return len(p.modules)
}

// Segments runs every module once and returns their combined output.
func (p *Prompt) Segments() []Segment {
	var line Line
	for _, m := range p.modules {
		m.AppendSegments(&line)
	}
	return line.Segments()
}

// Render runs the modules and paints the resulting line.
func (p *Prompt) Render(r *terminal.Renderer) string {
	return Render(r, p.Segments())
}

// Render paints segments in order. Each separator takes the next segment's
// background; the final one is drawn on the terminal default.
func Render(r *terminal.Renderer, segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(r.Paint(seg.Text, seg.FG, seg.BG))
		if seg.Separator == 0 {
			continue
		}

		var next terminal.Color
		if i+1 < len(segments) {
			next = segments[i+1].BG
		}
		b.WriteString(r.Paint(string(seg.Separator), seg.SeparatorFG, next))
	}
	b.WriteString(" ")
	return b.String()
}

type timed struct {
	name   string
	module Module
	log    *logger.Logger
	now    func() time.Time
}

// Timed wraps m so every AppendSegments call is logged with its elapsed time.
// The wrapped module's output is passed through untouched.
func Timed(name string, m Module, log *logger.Logger) Module {
	return &timed{
		name:   name,
		module: m,
		log:    log.WithFields(map[string]any{"module": name}),
		now:    time.Now,
	}
}

func (t *timed) AppendSegments(out *Line) {
	start := t.now()
	t.module.AppendSegments(out)
	t.log.Elapsed("module completed", t.now().Sub(start))
}
