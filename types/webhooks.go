package types

// WebhookPost is the body delivered to a bots configured webhook
type WebhookPost struct {
	BotID  string `json:"bot_id"`
	UserID string `json:"user_id"`
	Votes  int    `json:"votes"`

	// Only sent on test webhook requests
	Test bool `json:"test,omitempty"`
}
