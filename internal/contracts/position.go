package contracts

import (
	"fmt"
	"strings"
)

// Position is a squad slot label
type Position uint8

const (
	PositionGK Position = iota + 1
	PositionLB
	PositionCB
	PositionRB
	PositionLM
	PositionCM
	PositionRM
	PositionLW
	PositionST
	PositionRW
	PositionSUB
	// PositionCAM only appears in the cost multiplier table; no formation uses it.
	PositionCAM
)

var positionNames = map[Position]string{
	PositionGK:  "GK",
	PositionLB:  "LB",
	PositionCB:  "CB",
	PositionRB:  "RB",
	PositionLM:  "LM",
	PositionCM:  "CM",
	PositionRM:  "RM",
	PositionLW:  "LW",
	PositionST:  "ST",
	PositionRW:  "RW",
	PositionSUB: "SUB",
	PositionCAM: "CAM",
}

// ParsePosition parses a position label (case-insensitive)
func ParsePosition(s string) (Position, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for p, n := range positionNames {
		if n == label {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

func (p Position) String() string {
	if n, ok := positionNames[p]; ok {
		return n
	}
	return fmt.Sprintf("position(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler
func (p Position) MarshalText() ([]byte, error) {
	if _, ok := positionNames[p]; !ok {
		return nil, fmt.Errorf("invalid position %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
