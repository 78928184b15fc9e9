package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// WebhookHandler handles POST /webhook. It accepts the field set of Slack's
// incoming webhooks and posts the payload through the same resolve-join-post
// path as the messages endpoint. Payloads without a channel fall back to the
// configured default channel.
type WebhookHandler struct {
	slackClient    slackclient.ClientInterface
	resolver       *slackclient.Resolver
	defaultChannel string
	logger         *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
//
// Parameters:
//   - client: Slack client used to post the payload
//   - resolver: Channel resolver for the payload's channel token
//   - defaultChannel: Channel used when the payload carries none; may be empty
func NewWebhookHandler(client slackclient.ClientInterface, resolver *slackclient.Resolver, defaultChannel string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		slackClient:    client,
		resolver:       resolver,
		defaultChannel: defaultChannel,
		logger:         logger,
	}
}

// Handle processes a webhook payload. Unknown JSON fields are ignored so
// generic webhook emitters can post without tailoring their payloads.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req types.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, types.ErrCodeInvalidRequest, "request body must be valid JSON")
		return
	}

	if req.Text == "" {
		badRequest(w, types.ErrCodeMissingText, "text is required")
		return
	}

	channel := req.Channel
	if channel == "" {
		channel = h.defaultChannel
	}
	if channel == "" {
		badRequest(w, types.ErrCodeMissingChannel,
			"payload has no channel and no DEFAULT_CHANNEL is configured")
		return
	}

	channelID, err := h.resolver.ResolveAndJoin(r.Context(), channel)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	_, ts, err := h.slackClient.PostMessage(r.Context(), channelID, req.Text, slackclient.PostParams{
		Username:  req.Username,
		IconEmoji: req.IconEmoji,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("webhook payload posted",
		zap.String("channel", channelID),
		zap.String("ts", ts))

	// Webhook callers typically ignore the body; keep it minimal.
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
