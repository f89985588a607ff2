// Package setup implements the interactive first-run configuration wizard.
package setup

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/askpass/config"
)

// ErrAborted is returned when the user interrupts the wizard
var ErrAborted = errors.New("setup aborted")

const maskQuestion = "Show * for characters when prompting? [Y/n] "

// LineReader yields one edited line per call; satisfied by *readline.Instance
type LineReader interface {
	Readline() (string, error)
}

// Options configure a wizard run
type Options struct {
	Path   string        // destination file, config.Path() when empty
	Stdin  io.ReadCloser // defaults to os.Stdin
	Output io.Writer     // questions and notices, defaults to os.Stderr
}

// ParseAnswer interprets a yes/no reply; an empty reply selects def
func ParseAnswer(line string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errors.Errorf("unrecognized answer %q", line)
}

// Ask repeats the mask question until it gets a usable answer
func Ask(lr LineReader, out io.Writer) (showMask bool, err error) {
	for {
		line, err := lr.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return false, ErrAborted
			}
			return false, errors.Wrap(err, "read answer")
		}
		show, perr := ParseAnswer(line, true)
		if perr == nil {
			return show, nil
		}
		fmt.Fprintln(out, "Please answer y or n.")
	}
}

// Run asks the wizard questions and writes the resulting configuration.
// An existing valid configuration is used as the starting point.
// Returns the path written.
func Run(opts Options) (string, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	path := opts.Path
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return "", err
		}
		path = p
	}

	cfg := config.Default()
	if existing, err := config.Load(path); err == nil {
		cfg = existing
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: maskQuestion,
		Stdin:  opts.Stdin,
		Stdout: opts.Output,
		Stderr: opts.Output,
	})
	if err != nil {
		return "", errors.Wrap(err, "start line editor")
	}
	defer rl.Close()

	show, err := Ask(rl, opts.Output)
	if err != nil {
		return "", err
	}
	cfg.Secure = !show

	if err := config.Save(path, cfg); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"path": path, "secure": cfg.Secure}).Debug("setup: configuration written")
	fmt.Fprintf(opts.Output, "Configuration written to %s\n", path)
	return path, nil
}
