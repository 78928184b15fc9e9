package handlers

import (
	"net/http"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// ResolveChannelHandler handles GET /api/v1/channels/resolve.
// It runs the resolution fallback chain without joining the channel.
type ResolveChannelHandler struct {
	resolver *slackclient.Resolver
	logger   *zap.Logger
}

// NewResolveChannelHandler creates a new ResolveChannelHandler with the
// given resolver.
func NewResolveChannelHandler(resolver *slackclient.Resolver, logger *zap.Logger) *ResolveChannelHandler {
	return &ResolveChannelHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle processes a channel resolution request.
func (h *ResolveChannelHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("channel")
	if token == "" {
		badRequest(w, types.ErrCodeMissingChannel, "channel query parameter is required")
		return
	}

	channel, err := h.resolver.Resolve(r.Context(), token)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, types.ResolveChannelResponse{
		OK:        true,
		ID:        channel.ID,
		Name:      channel.Name,
		IsPrivate: channel.IsPrivate,
	})
}
