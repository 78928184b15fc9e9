package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// SendMessageHandler handles POST /api/v1/messages.
// It resolves the channel token, auto-joins the channel, and posts the message.
type SendMessageHandler struct {
	slackClient slackclient.ClientInterface
	resolver    *slackclient.Resolver
	logger      *zap.Logger
}

// NewSendMessageHandler creates a new SendMessageHandler with the given
// Slack client and resolver.
func NewSendMessageHandler(client slackclient.ClientInterface, resolver *slackclient.Resolver, logger *zap.Logger) *SendMessageHandler {
	return &SendMessageHandler{
		slackClient: client,
		resolver:    resolver,
		logger:      logger,
	}
}

// Handle processes a send-message request.
//
// The channel field accepts an ID, a name, or a "#name" token; names go
// through the resolution fallback chain and the bot joins the channel
// before posting.
func (h *SendMessageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, types.ErrCodeInvalidRequest, "request body must be valid JSON")
		return
	}

	if req.Text == "" {
		badRequest(w, types.ErrCodeMissingText, "text is required")
		return
	}
	if req.Channel == "" {
		badRequest(w, types.ErrCodeMissingChannel, "channel is required")
		return
	}

	channelID, err := h.resolver.ResolveAndJoin(r.Context(), req.Channel)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	channel, ts, err := h.slackClient.PostMessage(r.Context(), channelID, req.Text, slackclient.PostParams{
		ThreadTS:  req.ThreadTS,
		Username:  req.Username,
		IconEmoji: req.IconEmoji,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("message posted",
		zap.String("channel", channel),
		zap.String("ts", ts))

	writeJSON(w, http.StatusOK, types.SendMessageResponse{
		OK:        true,
		Channel:   channel,
		Timestamp: ts,
	})
}
