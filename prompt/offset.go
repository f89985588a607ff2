package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/lixenwraith/askpass/ansi"
	"github.com/lixenwraith/askpass/config"
)

// ErrNoPlaceholder is returned for a prompt without an indicator column
var ErrNoPlaceholder = errors.New("prompt has no placeholder")

// callerSuffix is appended to a prompt supplied on the command line
const callerSuffix = "< $ > "

// PlaceholderOffset returns how many columns separate the end of the printed
// template from its placeholder, counting the placeholder itself. Escape
// sequences in the template occupy no columns and are ignored.
func PlaceholderOffset(template string) (int, error) {
	visible := ansi.Strip(template)
	idx := strings.IndexRune(visible, config.Placeholder)
	if idx < 0 {
		return 0, errors.Wrapf(ErrNoPlaceholder, "%q", visible)
	}
	return utf8.RuneCountInString(visible[idx:]), nil
}

// Template picks the prompt text: a caller-supplied prompt gets the
// indicator suffix appended, unless it is sudo's own prompt, in which case
// the configured template is kept
func Template(configured, arg string) string {
	if arg == "" || strings.Contains(arg, "sudo") {
		return configured
	}
	return arg + callerSuffix
}
