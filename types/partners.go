package types

import (
	"time"
)

// @ci table=partners
//
// Partner represents a cross-promotion partner of the list.
type Partner struct {
	ID        string    `db:"id" json:"id" description:"The partners ID" validate:"required"`
	Name      string    `db:"name" json:"name" description:"The partners name" validate:"required"`
	Image     string    `db:"image" json:"image" description:"The partners image" validate:"required,https"`
	Short     string    `db:"short" json:"short" description:"Short description of the partner" validate:"required"`
	Links     []Link    `db:"links" json:"links" description:"Links of the partner" validate:"required,min=1,max=2"`
	UserID    string    `db:"user_id" json:"user_id" description:"User ID of the partner contact" validate:"required,numeric"`
	CreatedAt time.Time `db:"created_at" json:"created_at" description:"When the partner was created on DB"`
}

// CreatePartner is the request body for creating or editing a partner
type CreatePartner struct {
	ID     string `json:"id" validate:"required,notblank,nospaces,min=2,max=40" msg:"Partner ID must be between 2 and 40 characters with no spaces"`
	Name   string `json:"name" validate:"required,min=2,max=100" msg:"Name must be between 2 and 100 characters"`
	Image  string `json:"image" validate:"required,https" msg:"Image must be a valid HTTPS URL"`
	Short  string `json:"short" validate:"required,min=10,max=150" msg:"Short description must be between 10 and 150 characters"`
	Links  []Link `json:"links" validate:"required,min=1,max=2" msg:"Partners must have between 1 and 2 links"`
	UserID string `json:"user_id" validate:"required,numeric" msg:"User ID must be a snowflake"`
}

type PartnerList struct {
	Partners []Partner `json:"partners"`
}
