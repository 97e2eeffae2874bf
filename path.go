package border

import "fmt"

// PathCmd is a canonical drawing command.
type PathCmd int

// Canonical drawing commands. Every path is normalized to these four absolute commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
)

func (cmd PathCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "M"
	case LineToCmd:
		return "L"
	case QuadToCmd:
		return "Q"
	case CubeToCmd:
		return "C"
	}
	return fmt.Sprintf("PathCmd(%d)", int(cmd))
}

// Command is a drawing command as it appears in path text: a single command letter with its numeric arguments.
type Command struct {
	Cmd  byte
	Args []float64
}

func (c Command) String() string {
	return fmt.Sprintf("%c%v", c.Cmd, c.Args)
}

// Segment is a normalized drawing command with absolute coordinates. Args holds the control points followed by the
// end point as x,y pairs. Start is the cursor position before the command.
type Segment struct {
	Cmd   PathCmd
	Args  []float64
	Start Point
	End   Point
}

// Control returns the interior control points, empty for moves and lines.
func (seg Segment) Control() []Point {
	var ps []Point
	for i := 0; i+3 < len(seg.Args); i += 2 {
		ps = append(ps, Point{seg.Args[i], seg.Args[i+1]})
	}
	return ps
}

// zeroLength returns true if all points of the segment coincide.
func (seg Segment) zeroLength() bool {
	if !seg.Start.Equals(seg.End) {
		return false
	}
	for _, p := range seg.Control() {
		if !p.Equals(seg.Start) {
			return false
		}
	}
	return true
}

func (seg Segment) String() string {
	return fmt.Sprintf("%v%v", seg.Cmd, seg.Args)
}
