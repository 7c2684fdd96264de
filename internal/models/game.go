package models

// GameRecord is one line of a simulation log: a complete game as written by the simulator.
// Unknown fields in the source document are ignored.
type GameRecord struct {
	GameID    string        `json:"game_id" mapstructure:"game_id"`
	Seed      int64         `json:"seed,omitempty" mapstructure:"seed"`
	Timestamp string        `json:"timestamp,omitempty" mapstructure:"timestamp"`
	Config    GameConfig    `json:"config" mapstructure:"config"`
	Result    GameResult    `json:"result" mapstructure:"result"`
	Rounds    []RoundRecord `json:"rounds" mapstructure:"-"`

	// Line is the 1-based line number the record was read from.
	Line int `json:"-" mapstructure:"-"`
}

type GameConfig struct {
	AITypes    []string `json:"ai_types" mapstructure:"ai_types"`
	TotalGames int      `json:"total_games,omitempty" mapstructure:"total_games"`
}

type GameResult struct {
	Winner      int     `json:"winner" mapstructure:"winner"`
	FinalScores []int   `json:"final_scores" mapstructure:"final_scores"`
	DurationMs  float64 `json:"duration_ms,omitempty" mapstructure:"duration_ms"`
}

// AIType returns the agent type seated at seat, or "unknown" when the config
// does not cover that seat.
func (g *GameRecord) AIType(seat int) string {
	if seat >= 0 && seat < len(g.Config.AITypes) {
		return g.Config.AITypes[seat]
	}
	return UnknownAIType
}

// FinalScore returns the final score of seat, or 0 for a short scores list.
func (g *GameRecord) FinalScore(seat int) int {
	if seat >= 0 && seat < len(g.Result.FinalScores) {
		return g.Result.FinalScores[seat]
	}
	return 0
}

// UnknownAIType labels samples whose seat has no configured agent type.
const UnknownAIType = "unknown"

// RoundRecord is a single dealt hand within a game.
// Pointer fields are optional in the log and nil when absent.
type RoundRecord struct {
	RoundNo       int                `json:"round_no,omitempty" mapstructure:"round_no"`
	HandSize      int                `json:"hand_size" mapstructure:"hand_size"`
	Dealer        *int               `json:"dealer,omitempty" mapstructure:"dealer"`
	Trump         *string            `json:"trump" mapstructure:"trump"`
	TrumpSelector *int               `json:"trump_selector" mapstructure:"trump_selector"`
	Bids          []*int             `json:"bids" mapstructure:"bids"`
	TricksWon     []int              `json:"tricks_won" mapstructure:"tricks_won"`
	Scores        []int              `json:"scores" mapstructure:"scores"`
	BidAccuracy   []BidAccuracyEntry `json:"bid_accuracy" mapstructure:"bid_accuracy"`

	// Index is the position of the round within its game, independent of RoundNo.
	Index int `json:"-" mapstructure:"-"`
}

// ScoreAt returns the round score delta for seat, defaulting to 0 when the
// scores list is too short.
func (r *RoundRecord) ScoreAt(seat int) int {
	if seat >= 0 && seat < len(r.Scores) {
		return r.Scores[seat]
	}
	return 0
}

// AllBidsPresent reports whether every one of players seats placed a bid.
func (r *RoundRecord) AllBidsPresent(players int) bool {
	if len(r.Bids) < players {
		return false
	}
	for _, b := range r.Bids[:players] {
		if b == nil {
			return false
		}
	}
	return true
}

// BidAccuracyEntry is the simulator's per-seat summary of a round's contract.
// Underbid and Overbid carry the margin and are absent for the other outcome.
type BidAccuracyEntry struct {
	Seat     int  `json:"seat" mapstructure:"seat"`
	Bid      int  `json:"bid" mapstructure:"bid"`
	Tricks   int  `json:"tricks" mapstructure:"tricks"`
	Exact    bool `json:"exact" mapstructure:"exact"`
	Underbid *int `json:"underbid,omitempty" mapstructure:"underbid"`
	Overbid  *int `json:"overbid,omitempty" mapstructure:"overbid"`
}
