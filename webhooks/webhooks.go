// Outbound webhook delivery to listed bots.
package webhooks

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"litten/state"
	"litten/types"
	"litten/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNoWebhook = errors.New("bot has no webhook configured")

func isDiscord(url string) bool {
	validPrefixes := []string{
		"https://discordapp.com/api/webhooks/",
		"https://discord.com/api/webhooks/",
		"https://canary.discord.com/api/webhooks/",
		"https://ptb.discord.com/api/webhooks/",
	}

	for _, prefix := range validPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}

	return false
}

// Send delivers a vote event to the bots webhook. Delivery is best-effort,
// callers must not treat a failure here as a failure of the vote itself.
func Send(webhook types.WebhookPost) error {
	var webhookURL pgtype.Text
	var webAuth pgtype.Text
	var hmacAuth bool

	err := state.Pool.QueryRow(state.Context, "SELECT webhook, web_auth, hmac FROM bots WHERE bot_id = $1", webhook.BotID).Scan(&webhookURL, &webAuth, &hmacAuth)

	if err != nil {
		return err
	}

	if !webhookURL.Valid || utils.IsNone(webhookURL.String) {
		return ErrNoWebhook
	}

	// Discord webhooks carry no secret, we never post votes to them directly
	if isDiscord(webhookURL.String) {
		return errors.New("discord webhooks are not supported for vote delivery")
	}

	token := webAuth.String

	if utils.IsNone(token) {
		// Set the token to a random string in DB in this case
		token = utils.RandString(128)

		_, err = state.Pool.Exec(state.Context, "UPDATE bots SET web_auth = $1 WHERE bot_id = $2", token, webhook.BotID)

		if err != nil {
			return err
		}
	}

	body, err := json.Marshal(webhook)

	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(state.Context, "POST", webhookURL.String, bytes.NewReader(body))

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Nonce", uuid.New().String())

	if hmacAuth {
		// Sign the body with the shared secret instead of sending it
		mac := hmac.New(sha512.New, []byte(token))
		mac.Write(body)
		req.Header.Set("X-Webhook-Signature", hex.EncodeToString(mac.Sum(nil)))
	} else {
		req.Header.Set("Authorization", token)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	resp, err := client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New("webhook returned a non-success status: " + resp.Status)
	}

	return nil
}
