package border

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is returned for path text that cannot be parsed.
var ErrBadPath = errors.New("bad path")

// cmdArity returns the number of arguments a command takes, or -1 for unsupported commands.
func cmdArity(cmd byte) int {
	switch cmd {
	case 'Z', 'z':
		return 0
	case 'H', 'h', 'V', 'v':
		return 1
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	}
	return -1
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

func isNumStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParseCommands lexes SVG-like path text into commands. Numbers may be separated by whitespace, commas, or their
// sign. A command letter followed by several argument groups is expanded into one command per group, where extra
// groups after a move become lines. Unknown commands (including arcs), malformed numbers, and argument counts that
// do not fit the command return an error wrapping ErrBadPath.
func ParseCommands(sPath string) ([]Command, error) {
	path := []byte(sPath)
	cmds := []Command{}

	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := path[i]
		arity := cmdArity(cmd)
		if arity < 0 {
			return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrBadPath, cmd, i)
		}
		pos := i
		i++

		args := []float64{}
		for {
			i += skipCommaWhitespace(path[i:])
			if len(path) <= i || !isNumStart(path[i]) {
				break
			}
			f, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("%w: bad number at position %d", ErrBadPath, i)
			}
			args = append(args, f)
			i += n
		}

		if arity == 0 {
			if len(args) != 0 {
				return nil, fmt.Errorf("%w: command %q at position %d takes no arguments", ErrBadPath, cmd, pos)
			}
			cmds = append(cmds, Command{Cmd: cmd})
			continue
		} else if len(args) == 0 || len(args)%arity != 0 {
			return nil, fmt.Errorf("%w: command %q at position %d expects a multiple of %d arguments, got %d", ErrBadPath, cmd, pos, arity, len(args))
		}
		for j := 0; j < len(args); j += arity {
			cmds = append(cmds, Command{Cmd: cmd, Args: args[j : j+arity : j+arity]})
			if cmd == 'M' {
				cmd = 'L'
			} else if cmd == 'm' {
				cmd = 'l'
			}
		}
	}
	return cmds, nil
}

// MustParseCommands is like ParseCommands but panics on error.
func MustParseCommands(sPath string) []Command {
	cmds, err := ParseCommands(sPath)
	if err != nil {
		panic(err)
	}
	return cmds
}
