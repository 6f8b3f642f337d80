package types

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Bot listing states. A bot is submitted as pending, then approved or
// rejected by a reviewer. Rejected bots may be edited and resubmitted.
const (
	BotTypePending  = "pending"
	BotTypeApproved = "approved"
	BotTypeRejected = "rejected"
)

// IndexBot is the trimmed down bot used on index pages and search results
type IndexBot struct {
	BotID    string   `db:"bot_id" json:"bot_id"`
	Name     string   `db:"name" json:"name"`
	Avatar   string   `db:"avatar" json:"avatar"`
	Short    string   `db:"short" json:"short"`
	Type     string   `db:"type" json:"type"`
	Votes    int      `db:"votes" json:"votes"`
	Servers  int      `db:"servers" json:"servers"`
	Tags     []string `db:"tags" json:"tags"`
	Featured bool     `db:"featured" json:"featured"`
}

// @ci table=bots
//
// Bot represents a bot listed on the directory.
type Bot struct {
	ITag       pgtype.UUID        `db:"itag" json:"itag"`
	BotID      string             `db:"bot_id" json:"bot_id"`
	Owner      string             `db:"owner" json:"owner"`
	Name       string             `db:"name" json:"name"`
	Avatar     string             `db:"avatar" json:"avatar"`
	Short      string             `db:"short" json:"short"`
	Long       string             `db:"long" json:"long"`
	Tags       []string           `db:"tags" json:"tags"`
	ExtraLinks []Link             `db:"extra_links" json:"extra_links"`
	Type       string             `db:"type" json:"type"` // For auditing reasons, we do not filter out rejected bots in API
	Servers    int                `db:"servers" json:"servers"`
	Votes      int                `db:"votes" json:"votes"`
	Featured   bool               `db:"featured" json:"featured"`
	VoteBanned bool               `db:"vote_banned" json:"vote_banned"`
	DenyReason pgtype.Text        `db:"deny_reason" json:"deny_reason"`
	CreatedAt  pgtype.Timestamptz `db:"created_at" json:"created_at"`
}

// CreateBot is the request body for submitting a new bot to the list
type CreateBot struct {
	BotID      string   `json:"bot_id" validate:"required,numeric" msg:"Bot ID must be a snowflake"`
	Name       string   `json:"name" validate:"required,min=2,max=100,nonvulgar" msg:"Name must be between 2 and 100 characters"`
	Avatar     string   `json:"avatar" validate:"omitempty,https" msg:"Avatar must be a valid HTTPS URL"`
	Short      string   `json:"short" validate:"required,min=20,max=150" msg:"Short description must be between 20 and 150 characters"`
	Long       string   `json:"long" validate:"required,min=100,max=10000" msg:"Long description must be between 100 and 10000 characters"`
	Tags       []string `json:"tags" validate:"required,unique,min=1,max=5,dive,nonvulgar,notblank,nospaces" msg:"Bots must have between 1 and 5 tags without duplicates" amsg:"Each tag must be alphabetic with no spaces"`
	ExtraLinks []Link   `json:"extra_links" validate:"omitempty,max=5" msg:"A maximum of 5 extra links is allowed"`
	Servers    int      `json:"servers" validate:"omitempty,min=0" msg:"Server count must not be negative"`
}

// UpdateBotSettings is the request body for editing an existing listing
type UpdateBotSettings struct {
	Name       string   `json:"name" validate:"required,min=2,max=100,nonvulgar" msg:"Name must be between 2 and 100 characters"`
	Avatar     string   `json:"avatar" validate:"omitempty,https" msg:"Avatar must be a valid HTTPS URL"`
	Short      string   `json:"short" validate:"required,min=20,max=150" msg:"Short description must be between 20 and 150 characters"`
	Long       string   `json:"long" validate:"required,min=100,max=10000" msg:"Long description must be between 100 and 10000 characters"`
	Tags       []string `json:"tags" validate:"required,unique,min=1,max=5,dive,nonvulgar,notblank,nospaces" msg:"Bots must have between 1 and 5 tags without duplicates" amsg:"Each tag must be alphabetic with no spaces"`
	ExtraLinks []Link   `json:"extra_links" validate:"omitempty,max=5" msg:"A maximum of 5 extra links is allowed"`
	Servers    int      `json:"servers" validate:"omitempty,min=0" msg:"Server count must not be negative"`
}

// BotStats is posted by listed bots themselves using their bot token
type BotStats struct {
	Servers int `json:"servers" validate:"min=0" msg:"Server count must not be negative"`
}

// BotDeny is the request body when a reviewer denies a pending bot
type BotDeny struct {
	Reason string `json:"reason" validate:"required,min=5,max=1000" msg:"A deny reason of 5 to 1000 characters is required"`
}

// FeaturedUpdate is the request body for toggling the featured flag on a bot
type FeaturedUpdate struct {
	Featured bool `json:"featured"`
}

// All bots, paginated
type AllBots struct {
	Count   uint64     `json:"count"`
	PerPage uint64     `json:"per_page"`
	Results []IndexBot `json:"bots"`
}
