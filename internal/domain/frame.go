package domain

// BarView is a bar as rendered by a surface.
type BarView struct {
	Bar
	Color  string  `json:"color"`
	Active bool    `json:"active"`
	Volume float64 `json:"volume"`
}

// Frame is a read-only snapshot of a simulator, pushed to display surfaces.
type Frame struct {
	Mode         Mode      `json:"mode"`
	Heading      string    `json:"heading"`
	Label        string    `json:"label"`
	Params       Params    `json:"params"`
	TokenPercent int       `json:"token_percent"`
	AmountLabel  string    `json:"amount_label"`
	SplitHint    string    `json:"split_hint,omitempty"`
	Bars         []BarView `json:"bars"`
	Wave         WaveState `json:"wave"`
	Fee          string    `json:"fee"`
	Locked       bool      `json:"locked"`
	Ticks        int       `json:"ticks"`
}
