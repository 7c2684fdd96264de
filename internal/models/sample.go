package models

// BidSample is one seat's bidding outcome in one round.
// Error is ActualTricks - Bid: positive is an underbid, negative an overbid.
type BidSample struct {
	AIType        string   `json:"ai_type"`
	GameID        string   `json:"game_id"`
	RoundIndex    int      `json:"round_index"`
	HandSize      int      `json:"hand_size"`
	Seat          int      `json:"seat"`
	Bid           int      `json:"bid"`
	ActualTricks  int      `json:"actual_tricks"`
	Error         int      `json:"error"`
	AbsError      int      `json:"abs_error"`
	Trump         string   `json:"trump"`
	Dealer        *int     `json:"dealer,omitempty"`
	HighestBidder Tristate `json:"highest_bidder"`
	ChoseTrump    Tristate `json:"chose_trump"`
	Exact         bool     `json:"exact"`
	RoundScore    int      `json:"round_score"`
}

// Overbid reports whether the seat took fewer tricks than it bid.
func (s BidSample) Overbid() bool { return s.Error < 0 }

// Underbid reports whether the seat took more tricks than it bid.
func (s BidSample) Underbid() bool { return s.Error > 0 }

// GameSample is one seat's result in one game.
type GameSample struct {
	AIType     string `json:"ai_type"`
	GameID     string `json:"game_id"`
	Seat       int    `json:"seat"`
	Won        bool   `json:"won"`
	FinalScore int    `json:"final_score"`
}
