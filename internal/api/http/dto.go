package http

// CreateMatchRequest represents the payload for POST /matches.
type CreateMatchRequest struct {
	MatchName string `json:"match_name"`
	Nickname  string `json:"nickname"`
}

// JoinMatchRequest represents the payload for PUT /matches.
type JoinMatchRequest struct {
	MatchID  string `json:"match_id"`
	Nickname string `json:"nickname"`
}

// MatchJoined is returned on create and join.
type MatchJoined struct {
	MatchID   string `json:"match_id"`
	MatchName string `json:"match_name"`
	PlayerID  string `json:"player_id"`
	Nickname  string `json:"nickname"`
	Creator   bool   `json:"creator"`
}

// MatchSummary is one row of the joinable-match listing.
type MatchSummary struct {
	MatchID     string `json:"match_id"`
	MatchName   string `json:"match_name"`
	PlayerCount int    `json:"player_count"`
}

// PlayerDetail is one entry of a match detail response.
type PlayerDetail struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Order  int    `json:"order"`
	InTurn bool   `json:"in_turn"`
}

type MatchDetail struct {
	MatchID   string         `json:"match_id"`
	MatchName string         `json:"match_name"`
	Started   bool           `json:"started"`
	Players   []PlayerDetail `json:"players"`
}
