package border

import "unicode"

// normalizeState is the accumulator threaded through Normalize: the current cursor and the point of the most recent
// move, which close commands return to.
type normalizeState struct {
	cursor   Point
	lastOpen Point
}

// Normalize rewrites commands into segments that only use absolute move, line, quadratic, and cubic commands.
// Relative commands are translated by the cursor, horizontal and vertical lines take the other coordinate from the
// cursor, and close commands become lines to the last move. Smooth curves are translated but their reflected
// control point is not added, so that S becomes a quadratic through its explicit control point and T becomes a line.
func Normalize(cmds []Command) []Segment {
	segs := make([]Segment, 0, len(cmds))
	state := normalizeState{}
	for _, cmd := range cmds {
		var seg Segment
		seg, state = state.step(cmd)
		segs = append(segs, seg)
	}
	return segs
}

func (state normalizeState) step(cmd Command) (Segment, normalizeState) {
	cmd = state.resolve(cmd)
	seg := Segment{
		Args:  cmd.Args,
		Start: state.cursor,
	}
	switch cmd.Cmd {
	case 'M':
		seg.Cmd = MoveToCmd
	case 'L', 'T':
		seg.Cmd = LineToCmd
	case 'Q', 'S':
		seg.Cmd = QuadToCmd
	case 'C':
		seg.Cmd = CubeToCmd
	}
	if n := len(cmd.Args); 2 <= n {
		seg.End = Point{cmd.Args[n-2], cmd.Args[n-1]}
	}

	state.cursor = seg.End
	if seg.Cmd == MoveToCmd {
		state.lastOpen = seg.End
	}
	return seg, state
}

// resolve reduces a command to an absolute M, L, Q, C, S, or T command. Every command is rewritten at most twice,
// ie. h to H to L.
func (state normalizeState) resolve(cmd Command) Command {
	for {
		switch cmd.Cmd {
		case 'h':
			cmd = Command{'H', []float64{state.cursor.X + cmd.Args[0]}}
		case 'H':
			cmd = Command{'L', []float64{cmd.Args[0], state.cursor.Y}}
		case 'v':
			cmd = Command{'V', []float64{state.cursor.Y + cmd.Args[0]}}
		case 'V':
			cmd = Command{'L', []float64{state.cursor.X, cmd.Args[0]}}
		case 'z', 'Z':
			cmd = Command{'L', []float64{state.lastOpen.X, state.lastOpen.Y}}
		case 'm', 'l', 'q', 'c', 's', 't':
			args := make([]float64, len(cmd.Args))
			for i, arg := range cmd.Args {
				if i%2 == 0 {
					args[i] = arg + state.cursor.X
				} else {
					args[i] = arg + state.cursor.Y
				}
			}
			cmd = Command{byte(unicode.ToUpper(rune(cmd.Cmd))), args}
		default:
			return cmd
		}
	}
}
