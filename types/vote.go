package types

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// @ci table=votes
//
// Vote represents a single accepted vote in the ledger. Ledger entries are
// never mutated or deleted, the tally on the bot row is derived from them.
type Vote struct {
	ITag      pgtype.UUID `db:"itag" json:"itag" description:"The internal ID of the vote"`
	BotID     string      `db:"bot_id" json:"bot_id" description:"The ID of the bot that was voted for"`
	UserID    string      `db:"user_id" json:"user_id" description:"The ID of the user who voted"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// Stores the hours, minutes and seconds until the user can vote again
type VoteWait struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// A user vote is a struct containing basic info on a users vote
type UserVote struct {
	HasVoted       bool       `json:"has_voted"`
	ValidVotes     []Vote     `json:"valid_votes"`
	Wait           *VoteWait  `json:"wait"`
	NextEligibleAt *time.Time `json:"next_eligible_at"`
}

// VoteEligibility is returned by the vote eligibility endpoint
type VoteEligibility struct {
	CanVote        bool       `json:"can_vote"`
	Error          string     `json:"error,omitempty" description:"Reason the user cannot vote, if any"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
	TotalVotes     int        `json:"total_votes"`
}

// VoteResult is returned after a successfully cast vote
type VoteResult struct {
	TotalVotes int `json:"total_votes"`
}

// VoteEvent is handed to the notification sink after a vote is accepted
type VoteEvent struct {
	BotID    string `json:"bot_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Votes    int    `json:"votes"`
}
