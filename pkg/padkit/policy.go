package padkit

import (
	"strings"
)

// Side selects which ends of a sequence receive sentinels.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideBoth
)

var sideNames = map[Side]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
	SideBoth:  "both",
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Side) valid() bool {
	_, ok := sideNames[s]
	return ok
}

func (s Side) left() bool  { return s == SideLeft || s == SideBoth }
func (s Side) right() bool { return s == SideRight || s == SideBoth }

// ParseSide parses the textual form of a Side (none, left, right, both).
func ParseSide(raw string) (Side, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for side, name := range sideNames {
		if name == raw {
			return side, nil
		}
	}
	return SideNone, ErrInvalidSide.F("%q is not one of none, left, right, both", raw)
}

// Auto is a pad count that is derived from the window size with PadLen.
const Auto = -1

// Policy is the padding specification of a pipeline.
// It is consulted once when the pipeline is assembled.
//
// The zero value means no padding.
type Policy struct {
	Side Side
	// Left is the number of sentinels before the first item, or Auto.
	Left int
	// Right is the number of sentinels after the last item, or Auto.
	Right int
}

func None() Policy { return Policy{Side: SideNone} }

// Both pads both ends with the type's pad length, N-1 by default.
func Both() Policy { return Policy{Side: SideBoth, Left: Auto, Right: Auto} }

func LeftOnly(count int) Policy { return Policy{Side: SideLeft, Left: count} }

func RightOnly(count int) Policy { return Policy{Side: SideRight, Right: count} }

func Symmetric(count int) Policy { return Policy{Side: SideBoth, Left: count, Right: count} }

func Asymmetric(left, right int) Policy {
	return Policy{Side: SideBoth, Left: left, Right: right}
}

// Sides applies the same count to the selected sides only.
func Sides(side Side, count int) Policy {
	return Policy{Side: side, Left: count, Right: count}
}

func (p Policy) Validate() error {
	if !p.Side.valid() {
		return ErrInvalidSide.F("side value %d", int(p.Side))
	}
	if p.Side.left() && p.Left < Auto {
		return ErrNegativeCount.F("left count is %d", p.Left)
	}
	if p.Side.right() && p.Right < Auto {
		return ErrNegativeCount.F("right count is %d", p.Right)
	}
	return nil
}

// Counts resolves the policy into concrete per side counts.
// Auto counts become padLen, unselected sides get zero.
func (p Policy) Counts(padLen int) (left, right int) {
	if p.Side.left() {
		left = resolveCount(p.Left, padLen)
	}
	if p.Side.right() {
		right = resolveCount(p.Right, padLen)
	}
	return left, right
}

func resolveCount(count, padLen int) int {
	if count == Auto {
		return padLen
	}
	return count
}
