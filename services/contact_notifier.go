package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salvodev/portfolio-backend/config"
)

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from the Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// ContactNotification carries the submission fields worth forwarding
type ContactNotification struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactNotifier forwards contact-form submissions to the site owner's inbox
// via the Resend API. Delivery is best effort and never blocks the write path.
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

// NewContactNotifierFromConfig builds a notifier from environment config.
// Returns nil when the required keys are missing, which disables notification.
func NewContactNotifierFromConfig(cfg map[string]string) *ContactNotifier {
	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	toEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || fromEmail == "" || toEmail == "" {
		log.Info().Msg("Contact notification disabled: Resend config missing")
		return nil
	}

	return &ContactNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Notify sends one email describing the submission
func (n *ContactNotifier) Notify(submission *ContactNotification) error {
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(submission.Subject),
		html.EscapeString(submission.Message),
	)

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("New contact form message: %s", submission.Subject),
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Sent contact notification via Resend")
	}

	return nil
}
