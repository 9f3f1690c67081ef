package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Embed colors (Discord decimal color codes).
const (
	colorInfo    = 3447003  // blue
	colorWarning = 16776960 // yellow
	colorError   = 15158332 // red
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return d.webhookURL()
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from the given options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	color := colorInfo
	switch options.Type {
	case MessageTypeWarning:
		color = colorWarning
	case MessageTypeError:
		color = colorError
	}

	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       color,
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}

	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendError sends an error embed with the error message as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	options := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		options.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.SendEmbed(ctx, options)
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
	})
}

// Close releases client resources.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord: webhook returned status %d", resp.StatusCode)
		return fmt.Errorf("%w: status %d", errRequestFailed, resp.StatusCode)
	}
	return nil
}
