// Package votes implements the vote ledger and the 12 hour cooldown rule.
//
// The votes table is append-only and is the source of truth for all vote
// counts. The votes column on the bots table is a denormalized tally kept in
// sync on the hot path and repairable from the ledger at any time.
package votes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"litten/db"
	"litten/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The cooldown window is exactly 12 hours measured from the previous
// accepted vote, not from a calendar boundary.
const VoteCooldown = 12 * time.Hour

var (
	ErrBotNotFound = errors.New("bot not found")
	ErrSelfVote    = errors.New("bot owners cannot vote for their own bot")
	ErrVoteBanned  = errors.New("vote banned")
	ErrNotApproved = errors.New("bot is not approved and cannot be voted for right now")
)

// ErrCooldown is returned when a voter is still inside the cooldown window
type ErrCooldown struct {
	NextEligibleAt time.Time
}

func (e ErrCooldown) Error() string {
	return "you have already voted for this bot recently, next vote at " + e.NextEligibleAt.Format(time.RFC3339)
}

var (
	voteColsArr = db.GetCols(types.Vote{})
	voteCols    = strings.Join(voteColsArr, ",")
)

// NextEligibleAt returns when the voter may vote again after a vote at t
func NextEligibleAt(t time.Time) time.Time {
	return t.Add(VoteCooldown)
}

// Wait breaks the remaining cooldown down for display
func Wait(lastVote, now time.Time) *types.VoteWait {
	remaining := NextEligibleAt(lastVote).Sub(now)

	if remaining <= 0 {
		return nil
	}

	hours := remaining / time.Hour
	mins := (remaining - hours*time.Hour) / time.Minute
	secs := (remaining - hours*time.Hour - mins*time.Minute) / time.Second

	return &types.VoteWait{
		Hours:   int(hours),
		Minutes: int(mins),
		Seconds: int(secs),
	}
}

// BotInfo is the subset of the bot record the vote path needs
type BotInfo struct {
	BotID      string
	Owner      string
	Type       string
	VoteBanned bool
	Votes      int
}

// GetBotInfo resolves a bot by ID for voting purposes
func GetBotInfo(ctx context.Context, c db.DbConn, botId string) (*BotInfo, error) {
	var bi BotInfo

	err := c.QueryRow(ctx, "SELECT bot_id, owner, type, vote_banned, votes FROM bots WHERE bot_id = $1", botId).Scan(&bi.BotID, &bi.Owner, &bi.Type, &bi.VoteBanned, &bi.Votes)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot data for this vote: %w", err)
	}

	return &bi, nil
}

// CheckVote returns the voters current cooldown state against a bot. This is
// a pure read, evaluated against now.
func CheckVote(ctx context.Context, c db.DbConn, userId, botId string, now time.Time) (*types.UserVote, error) {
	rows, err := c.Query(
		ctx,
		"SELECT "+voteCols+" FROM votes WHERE user_id = $1 AND bot_id = $2 AND created_at > $3 ORDER BY created_at DESC",
		userId,
		botId,
		now.Add(-VoteCooldown),
	)

	if err != nil {
		return nil, err
	}

	validVotes, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Vote])

	if errors.Is(err, pgx.ErrNoRows) {
		validVotes = []types.Vote{}
	} else if err != nil {
		return nil, err
	}

	uv := types.UserVote{
		HasVoted:   len(validVotes) > 0,
		ValidVotes: validVotes,
	}

	if uv.HasVoted {
		next := NextEligibleAt(validVotes[0].CreatedAt)
		uv.NextEligibleAt = &next
		uv.Wait = Wait(validVotes[0].CreatedAt, now)
	}

	return &uv, nil
}

// CastVote validates eligibility and records a vote in one transaction.
//
// The ledger insert and the tally increment either both commit or neither
// does. A unique index over (bot_id, user_id, window_bucket) backstops the
// check-then-insert against concurrent casts from the same voter: the loser
// of the race takes a unique violation which is mapped to ErrCooldown.
func CastVote(ctx context.Context, pool *pgxpool.Pool, userId, botId string) (int, error) {
	var userVoteBanned bool

	err := pool.QueryRow(ctx, "SELECT vote_banned FROM users WHERE user_id = $1", userId).Scan(&userVoteBanned)

	if err != nil {
		return 0, fmt.Errorf("failed to fetch voter data: %w", err)
	}

	if userVoteBanned {
		return 0, ErrVoteBanned
	}

	tx, err := pool.Begin(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to begin vote transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	bi, err := GetBotInfo(ctx, tx, botId)

	if err != nil {
		return 0, err
	}

	if bi.VoteBanned {
		return 0, ErrVoteBanned
	}

	if bi.Type != types.BotTypeApproved {
		return 0, ErrNotApproved
	}

	if bi.Owner == userId {
		return 0, ErrSelfVote
	}

	now := time.Now()

	uv, err := CheckVote(ctx, tx, userId, bi.BotID, now)

	if err != nil {
		return 0, err
	}

	if uv.HasVoted {
		return 0, ErrCooldown{NextEligibleAt: *uv.NextEligibleAt}
	}

	_, err = tx.Exec(ctx, "INSERT INTO votes (user_id, bot_id, created_at) VALUES ($1, $2, $3)", userId, bi.BotID, now)

	if err != nil {
		var pgErr *pgconn.PgError

		// 23505 means a concurrent vote won the race inside this window
		// bucket. Report the winners timestamp, not ours.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			next := NextEligibleAt(now)

			var winner time.Time

			if qerr := pool.QueryRow(ctx, "SELECT created_at FROM votes WHERE user_id = $1 AND bot_id = $2 ORDER BY created_at DESC LIMIT 1", userId, bi.BotID).Scan(&winner); qerr == nil {
				next = NextEligibleAt(winner)
			}

			return 0, ErrCooldown{NextEligibleAt: next}
		}

		return 0, fmt.Errorf("failed to insert vote: %w", err)
	}

	var newTally int

	err = tx.QueryRow(ctx, "UPDATE bots SET votes = votes + 1 WHERE bot_id = $1 RETURNING votes", bi.BotID).Scan(&newTally)

	if err != nil {
		return 0, fmt.Errorf("failed to update vote count: %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to commit vote: %w", err)
	}

	return newTally, nil
}

// VoteCount returns the exact (non-cached) vote count from the ledger
func VoteCount(ctx context.Context, c db.DbConn, botId string) (int, error) {
	var count int

	err := c.QueryRow(ctx, "SELECT COUNT(*) FROM votes WHERE bot_id = $1", botId).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// RepairTally recomputes the denormalized tally from the ledger. The ledger
// is truth, the tally is a cache that can drift after manual intervention.
func RepairTally(ctx context.Context, c db.DbConn, botId string) (int, error) {
	var tally int

	err := c.QueryRow(ctx, "UPDATE bots SET votes = (SELECT COUNT(*) FROM votes WHERE bot_id = $1) WHERE bot_id = $1 RETURNING votes", botId).Scan(&tally)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrBotNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to repair vote count: %w", err)
	}

	return tally, nil
}
