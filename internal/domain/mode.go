package domain

import "fmt"

// Mode selects the shape of the liquidity distribution and the wave behaviour.
type Mode string

const (
	ModeNone     Mode = ""
	ModeCombined Mode = "combined"
	ModeBid      Mode = "bid"
	ModeAsk      Mode = "ask"
	ModeBoth     Mode = "both"
	ModeSpots    Mode = "spots"
	ModeAgents   Mode = "agents"
)

// Modes lists the selectable strategies in menu order.
var Modes = []Mode{ModeBoth, ModeBid, ModeAsk, ModeSpots, ModeAgents, ModeCombined}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNone, ModeCombined, ModeBid, ModeAsk, ModeBoth, ModeSpots, ModeAgents:
		return m, nil
	case "none":
		return ModeNone, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Heading is the card title shown for the mode.
func (m Mode) Heading() string {
	switch m {
	case ModeBid:
		return "BID Strategy"
	case ModeAsk:
		return "ASK Strategy"
	case ModeBoth:
		return "BID ASK Strategy"
	case ModeSpots:
		return "SPOTS Strategy"
	case ModeAgents:
		return "CURVE 4 Dummies"
	default:
		return "Welcome LPs"
	}
}

// Label is the short name used by the strategy selector.
func (m Mode) Label() string {
	switch m {
	case ModeCombined, ModeBoth:
		return "Bid Ask"
	case ModeBid:
		return "Bid"
	case ModeAsk:
		return "Ask"
	case ModeSpots:
		return "Spots"
	case ModeAgents:
		return "Curve"
	default:
		return "Choose Strategy"
	}
}

// UsesSplit reports whether the SOL/Token split drives the shape.
// The coin amount slider is shown for the other modes.
func (m Mode) UsesSplit() bool {
	return m == ModeBoth || m == ModeSpots || m == ModeAgents
}

// SplitHint is the caption under the split sliders.
func (m Mode) SplitHint() string {
	switch m {
	case ModeSpots:
		return "Spot positions move based on SOL/Token ratio"
	case ModeAgents:
		return "Curve intensity adjusts based on SOL/Token ratio"
	default:
		return "Price moves based on SOL/Token ratio"
	}
}

func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}
