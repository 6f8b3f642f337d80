package types

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// @ci table=users
//
// User represents an authenticated account on the list.
type User struct {
	ITag       pgtype.UUID        `db:"itag" json:"itag"`
	ID         string             `db:"user_id" json:"user_id"`
	Username   string             `db:"username" json:"username"`
	Avatar     string             `db:"avatar" json:"avatar"`
	About      pgtype.Text        `db:"about" json:"about"`
	ExtraLinks []Link             `db:"extra_links" json:"extra_links" description:"The users links that it wishes to advertise"`
	Roles      []string           `db:"roles" json:"roles"`
	VoteBanned bool               `db:"vote_banned" json:"vote_banned"`
	Banned     bool               `db:"banned" json:"banned"`
	CreatedAt  pgtype.Timestamptz `db:"created_at" json:"created_at"`
	UserBots   []IndexBot         `db:"-" json:"user_bots" ci:"internal"` // Must be handled internally
}

// ProfileUpdate is the request body for a profile edit
type ProfileUpdate struct {
	About      string `json:"about" validate:"omitempty,max=1000" msg:"About must be a maximum of 1000 characters"`
	ExtraLinks []Link `json:"extra_links" validate:"omitempty,max=5" msg:"A maximum of 5 extra links is allowed"`
}

// RolesUpdate is the request body for a role management operation
type RolesUpdate struct {
	Roles []string `json:"roles" validate:"required,unique,min=1" msg:"At least one role must be given" amsg:"Each role must be a known role"`
}
