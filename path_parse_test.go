package border

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func commandsString(cmds []Command) string {
	sb := strings.Builder{}
	for i, cmd := range cmds {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(cmd.String())
	}
	return sb.String()
}

func TestParseCommands(t *testing.T) {
	var tts = []struct {
		path     string
		expected string
	}{
		{"", ""},
		{"  ", ""},
		{"M10 20", "M[10 20]"},
		{"M10,20L30-40", "M[10 20] L[30 -40]"},
		{"M 10 , 20 \n L\t30\f40", "M[10 20] L[30 40]"},
		{"M1e2.5", "M[100 0.5]"},
		{"M.5.5", "M[0.5 0.5]"},
		{"M0 0 10 0 10 10", "M[0 0] L[10 0] L[10 10]"},
		{"m1 1 2 2", "m[1 1] l[2 2]"},
		{"M0 0L1 1 2 2", "M[0 0] L[1 1] L[2 2]"},
		{"M0 0H10V10h-5v-5Z", "M[0 0] H[10] V[10] h[-5] v[-5] Z[]"},
		{"M0 0Q5 10 10 0T20 0", "M[0 0] Q[5 10 10 0] T[20 0]"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M[0 0] C[0 10 10 10 10 0] S[20 -10 20 0]"},
		{"M0 0zM1 1z", "M[0 0] z[] M[1 1] z[]"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			cmds, err := ParseCommands(tt.path)
			test.Error(t, err)
			test.String(t, commandsString(cmds), tt.expected)
		})
	}
}

func TestParseCommandsErrors(t *testing.T) {
	var tts = []string{
		"X",
		"10 10",
		"M0 0A5 5 0 0 1 10 10",
		"M0",
		"M0 0 1",
		"M0 0L",
		"M0 0Q1 1",
		"M0 0Z1",
		"M0 0L-",
		"M0 0L1 .",
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseCommands(tt)
			test.That(t, errors.Is(err, ErrBadPath), "error must wrap ErrBadPath:", err)
		})
	}
}

func TestMustParseCommands(t *testing.T) {
	test.String(t, commandsString(MustParseCommands("M1 2")), "M[1 2]")

	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParseCommands("M1")
}
