package ansi

import (
	"math/rand/v2"
	"testing"
	"unsafe"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Enter password < $ > ", "Enter password < $ > "},
		{"sgr", "\x1b[1;31mHELLO\x1b[0m", "HELLO"},
		{"wrapped prompt", "\x1b[33mEnter password < $ > \x1b[0m", "Enter password < $ > "},
		{"cursor motion", "\x1b[?25l\x1b7\x1b[4D\x1b[36m󱃓\x1b[0m\x1b8\x1b[?25h", "󱃓"},
		{"invalid kept", "\x1b!x", "\x1b!x"},
		{"spliced introducer", "\x1b\x1b[0m[0m", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.in))
		})
	}
}

func TestStrip_NoCopyWithoutEscapes(t *testing.T) {
	in := "Enter password < $ > "
	out := Strip(in)
	assert.True(t, unsafe.StringData(in) == unsafe.StringData(out), "expected the input string back")
}

func TestStrip_Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for range 2000 {
		in := randomInput(r)
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "input %q", in)
		assert.False(t, Contains(once), "input %q", in)
	}
}

func TestStrip_AgreesOnSGR(t *testing.T) {
	for _, in := range []string{
		"\x1b[33mEnter password\x1b[0m",
		"a\x1b[1;32mb\x1b[0mc",
		"\x1b[36m\x1b[0m",
	} {
		assert.Equal(t, stripansi.Strip(in), Strip(in), "input %q", in)
	}
}
