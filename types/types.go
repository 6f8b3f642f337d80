package types

type TargetType string

const (
	TargetTypeUser TargetType = "user"
	TargetTypeBot  TargetType = "bot"
)

// SEO object (minified bot/user/partner for embeds etc.)
type SEO struct {
	Name   string `json:"name"`
	ID     string `json:"id"`
	Avatar string `json:"avatar"`
	Short  string `json:"short"`
}

// This represents a API Error
type ApiError struct {
	Context map[string]string `json:"context,omitempty" description:"Any extra context for the error if available"`
	Message string            `json:"message" description:"The error message"`
	Error   bool              `json:"error" description:"Whether or not this is an error"`
}

// A link is any named URL shown on a profile or listing
type Link struct {
	Name  string `json:"name" description:"Name of the link" validate:"required"`
	Value string `json:"value" description:"Value of the link" validate:"required,https"`
}
