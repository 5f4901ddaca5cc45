package domain

// Bar is one bin of the visualized distribution.
type Bar struct {
	Index     int     `json:"index"`
	Height    float64 `json:"height"` // percent of the chart, [0, 100]
	Liquidity float64 `json:"liquidity"`
}
