package domain

// CommandOp names a user action on a simulator.
type CommandOp string

const (
	OpMode   CommandOp = "mode"
	OpBins   CommandOp = "bins"
	OpAmount CommandOp = "amount"
	OpSol    CommandOp = "sol"
	OpToken  CommandOp = "token"
	OpStart  CommandOp = "start"
	OpPause  CommandOp = "pause"
	OpToggle CommandOp = "toggle"
	OpReset  CommandOp = "reset"
)

// Command is the wire form of a user action, shared by the HTTP API and the
// websocket.
type Command struct {
	Op    CommandOp `json:"op"`
	Mode  string    `json:"mode,omitempty"`
	Value float64   `json:"value,omitempty"`
}
