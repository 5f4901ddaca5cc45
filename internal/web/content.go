package web

import "github.com/vitos/lp_wave/internal/domain"

// Fact is one section of the Curve starter pack page.
type Fact struct {
	Number      string
	Title       string
	Description string
	Highlight   string
}

var curveFacts = []Fact{
	{"FACT 01", "Curved prints only when the chart moves",
		"If the chart is sleeping, your LP is sleeping too. No price action means no swaps passing through your range. Your position just sits there earning nothing.",
		"Motion = Money"},
	{"FACT 02", "Volume is the whole engine",
		"High volume? Fees go brrrr. Low volume? You're farming dust. The amount of trading activity directly powers your earnings.",
		"Volume = Your Paycheck"},
	{"FACT 03", "Curve level = how wild your LP acts",
		"Low curve gives you chill vibes with wider range. High curve? That's chaos, adrenaline, and possible tears. Choose your adventure wisely.",
		"Your Risk Dial"},
	{"FACT 04", "Curved is a quickie tool",
		"Get in when it's popping, dip when it cools off. No loyalty here. This isn't a marriage, it's a tactical rotation strategy.",
		"In Fast, Out Faster"},
	{"FACT 05", "High curve loves IL (in a bad way)",
		"If price trends too long in one direction, your bags get cooked. Impermanent Loss hits harder on concentrated positions. Newbies, stay low.",
		"Beginners: Stay Low"},
	{"FACT 06", "You don't need a pump to print",
		"Tiny swings + volume = easy Curved fees. No moonshot needed. A choppy sideways market can be your best friend with the right setup.",
		"Small Moves, Big Fees"},
}

// Step is one step of the strategy playbook.
type Step struct {
	Title   string
	Desc    string
	Trigger string
}

var strategySteps = []Step{
	{"ENTER IN VOLUME", "Wait for high activity. Don't jump into dead pools.", "Volume spike = GO"},
	{"PRINT FEES", "Ride the action. Let swaps flow through your range.", "Action = Earnings"},
	{"EXIT BEFORE QUIET", "Don't overstay. Leave before volume dies.", "Cooling = GTFO"},
}

// PoolParam is one card of the pool setup guide.
type PoolParam struct {
	Name  string
	Value string
	Desc  string
}

var poolParams = []PoolParam{
	{"Range", "-5% to +5~6%", "Tight and spicy, for max fee action."},
	{"Bin Steps", "Depends", "Token's mood: calm = small, degen = bigger."},
	{"Curve Level", "Dynamic", "Chart cooking? Turn it up. Meh? Keep low."},
}

// Strategy describes a "coming soon" strategy page.
type Strategy struct {
	Slug     string
	Name     string
	Color    string
	Gradient string
}

var strategies = map[string]Strategy{
	"bid":     {"bid", "Bid", domain.ColorOrange.Hex(), ""},
	"ask":     {"ask", "Ask", domain.ColorPurple.Hex(), ""},
	"bid-ask": {"bid-ask", "Bid Ask", domain.ColorViolet.Hex(), "linear-gradient(135deg, #F97316, #A855F7)"},
	"spots":   {"spots", "Spots", domain.ColorSky.Hex(), ""},
}

type modeOption struct {
	Value string
	Label string
}

// modeOptions is the strategy selector, in menu order. Combined mode is not
// offered on the page.
func modeOptions() []modeOption {
	opts := make([]modeOption, 0, len(domain.Modes))
	for _, m := range domain.Modes {
		if m == domain.ModeCombined {
			continue
		}
		opts = append(opts, modeOption{Value: string(m), Label: m.Label()})
	}
	return opts
}
