package hostlink

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Link sends channel commands over a Port as newline-terminated text
// lines and reads back single-line text replies, the host-side half of
// the engine's caller API (§6) for a process that isn't running the
// planner itself.
type Link struct {
	port   Port
	reader *bufio.Reader
}

// NewLink wraps an already-open Port.
func NewLink(port Port) *Link {
	return &Link{port: port, reader: bufio.NewReader(port)}
}

// Move sends "move <channel> <delta>".
func (l *Link) Move(channel string, delta int32) (string, error) {
	return l.command(fmt.Sprintf("move %s %d", channel, delta))
}

// MoveTo sends "moveto <channel> <position>".
func (l *Link) MoveTo(channel string, pos int32) (string, error) {
	return l.command(fmt.Sprintf("moveto %s %d", channel, pos))
}

// SetDynamics sends "set_dynamics <channel> <min_travel_ticks> <accel>".
func (l *Link) SetDynamics(channel string, minTravelTicks uint32, accel float64) (string, error) {
	return l.command(fmt.Sprintf("set_dynamics %s %d %g", channel, minTravelTicks, accel))
}

// Position sends "position <channel>" and parses the reply as a signed
// integer step count.
func (l *Link) Position(channel string) (int32, error) {
	reply, err := l.command(fmt.Sprintf("position %s", channel))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(reply), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("hostlink: malformed position reply %q: %w", reply, err)
	}
	return int32(v), nil
}

func (l *Link) command(line string) (string, error) {
	if _, err := l.port.Write([]byte(line + "\n")); err != nil {
		return "", fmt.Errorf("hostlink: write: %w", err)
	}
	if err := l.port.Flush(); err != nil {
		return "", fmt.Errorf("hostlink: flush: %w", err)
	}
	reply, err := l.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("hostlink: read reply: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
