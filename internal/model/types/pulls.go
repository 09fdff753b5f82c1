package types

// PullsRequest carries the raw text of the calculator fields. Text that is
// not a non-negative number counts as zero.
type PullsRequest struct {
	Crystals          string `json:"crystals" validate:"max=32"`
	TenPullTickets    string `json:"tenPullTickets" validate:"max=32"`
	SinglePullTickets string `json:"singlePullTickets" validate:"max=32"`
}

type PullsResponse struct {
	TotalPulls      int     `json:"totalPulls"`
	SparkPercentage float64 `json:"sparkPercentage"`
	Display         string  `json:"display"`
}
