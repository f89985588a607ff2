// @focus: #input { prompt }
package prompt

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/askpass/config"
	"github.com/lixenwraith/askpass/spinner"
	"github.com/lixenwraith/askpass/terminal"
)

// Mask is echoed for every typed character outside secure mode
const Mask = '*'

// State of the input controller
type State uint8

const (
	StateReading State = iota // awaiting keystrokes
	StateDone                 // newline received, buffer final
)

func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "reading"
}

// ErrDone is returned when input arrives after the session finished
var ErrDone = errors.New("prompt already completed")

// Renderer draws the indicator glyph; satisfied by *spinner.Renderer
type Renderer interface {
	Render(kind spinner.Kind, offset, bufLen int)
}

// Options configure one prompt session
type Options struct {
	Template    string // prompt text containing the placeholder
	PromptColor int    // SGR color for the template
	Secure      bool   // hide length: no mask echo, pinned indicator

	Output   *terminal.Output
	Input    io.RuneReader
	Renderer Renderer
}

// Controller is the line editor state machine.
// One keystroke is processed completely, output flushed included, before
// the next is read.
type Controller struct {
	opts   Options
	offset int
	buf    []rune
	state  State
	begun  bool
}

// New validates the template and prepares a controller
func New(opts Options) (*Controller, error) {
	if opts.Output == nil || opts.Input == nil || opts.Renderer == nil {
		return nil, errors.New("prompt: output, input and renderer are required")
	}
	offset, err := PlaceholderOffset(opts.Template)
	if err != nil {
		return nil, err
	}
	return &Controller{
		opts:   opts,
		offset: offset,
		buf:    make([]rune, 0, 64),
	}, nil
}

// NewSession wires a controller for cfg on a terminal's streams.
// arg is the prompt passed by the caller, if any.
func NewSession(cfg config.Config, arg string, out *terminal.Output, in io.RuneReader) (*Controller, error) {
	set := spinner.Set{
		Glyphs: cfg.Prompt.Glyphs(),
		Empty:  rune(cfg.Prompt.Empty),
		Secure: rune(cfg.Prompt.Secure),
		Color:  cfg.Prompt.IconsColor,
	}
	return New(Options{
		Template:    Template(cfg.Prompt.Text, arg),
		PromptColor: cfg.Prompt.PromptColor,
		Secure:      cfg.Secure,
		Output:      out,
		Input:       in,
		Renderer:    spinner.New(set, out),
	})
}

// Offset returns the placeholder distance from the end of the template
func (c *Controller) Offset() int { return c.offset }

// State returns the current machine state
func (c *Controller) State() State { return c.state }

// Len returns the number of buffered characters
func (c *Controller) Len() int { return len(c.buf) }

// Begin prints the template and the empty indicator. Called once by Run;
// exposed for callers driving Handle directly.
func (c *Controller) Begin() error {
	if c.begun {
		return nil
	}
	c.begun = true

	c.opts.Output.Colored(c.opts.PromptColor, c.opts.Template)
	c.opts.Renderer.Render(spinner.KindEmpty, c.offset, 0)
	log.WithFields(log.Fields{"offset": c.offset, "secure": c.opts.Secure}).Debug("prompt: started")
	return errors.Wrap(c.opts.Output.Flush(), "write prompt")
}

// Handle applies one decoded keystroke
func (c *Controller) Handle(r rune) error {
	if c.state == StateDone {
		return ErrDone
	}

	switch r {
	case terminal.KeyNewline, terminal.KeyEnter:
		c.state = StateDone
		c.opts.Output.WriteString("\n")
		log.Debug("prompt: completed")
	case terminal.KeyBackspace, terminal.KeyCtrlH:
		c.backspace()
	default:
		c.insert(r)
	}
	return errors.Wrap(c.opts.Output.Flush(), "write terminal")
}

// backspace pops the last character; the empty indicator is restored only
// on the transition to an empty buffer
func (c *Controller) backspace() {
	if len(c.buf) == 0 {
		return
	}
	c.buf = c.buf[:len(c.buf)-1]

	out := c.opts.Output
	if !c.opts.Secure {
		out.CursorBackward(1)
		out.WriteRune(' ')
		out.CursorBackward(1)
		c.opts.Renderer.Render(spinner.KindBackward, c.offset, len(c.buf))
	}
	if len(c.buf) == 0 {
		c.opts.Renderer.Render(spinner.KindEmpty, c.offset, 0)
	}
}

func (c *Controller) insert(r rune) {
	c.buf = append(c.buf, r)

	if c.opts.Secure {
		c.opts.Renderer.Render(spinner.KindSecure, c.offset, len(c.buf))
		return
	}
	c.opts.Output.WriteRune(Mask)
	c.opts.Renderer.Render(spinner.KindForward, c.offset, len(c.buf))
}

// Run draws the prompt and consumes keystrokes until newline, returning the
// typed text. Any read or write failure ends the session with an error.
func (c *Controller) Run() (string, error) {
	if err := c.Begin(); err != nil {
		return "", err
	}
	for c.state == StateReading {
		r, _, err := c.opts.Input.ReadRune()
		if err != nil {
			return "", errors.Wrap(err, "read input")
		}
		if err := c.Handle(r); err != nil {
			return "", err
		}
	}
	return string(c.buf), nil
}
