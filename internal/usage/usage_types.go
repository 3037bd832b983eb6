package usage

// TokenCounts holds input/output sums.
type TokenCounts struct {
	Input  int64 `json:"input"`
	Output int64 `json:"output"`
	Total  int64 `json:"total"`
}

func (tc *TokenCounts) Add(input, output int) {
	tc.Input += int64(input)
	tc.Output += int64(output)
	tc.Total += int64(input + output)
}

// Stats is a snapshot of a session's usage.
type Stats struct {
	Requests int                    `json:"requests"`
	Total    TokenCounts            `json:"total"`
	ByModel  map[string]TokenCounts `json:"by_model"`
}
