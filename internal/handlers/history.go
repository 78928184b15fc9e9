package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

const (
	// defaultHistoryLimit is used when the request does not specify one.
	defaultHistoryLimit = 100
	// maxHistoryLimit is Slack's documented cap for conversations.history.
	maxHistoryLimit = 1000
)

// HistoryHandler handles GET /api/v1/channels/{id}/history.
type HistoryHandler struct {
	slackClient slackclient.ClientInterface
	resolver    *slackclient.Resolver
	logger      *zap.Logger
}

// NewHistoryHandler creates a new HistoryHandler with the given Slack client
// and resolver.
func NewHistoryHandler(client slackclient.ClientInterface, resolver *slackclient.Resolver, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		slackClient: client,
		resolver:    resolver,
		logger:      logger,
	}
}

// Handle processes a history request.
//
// The {id} path segment may be a channel name; it goes through the
// resolution chain without an auto-join, since reading history does not
// require membership for public channels the bot can see.
func (h *HistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	channel, err := h.resolver.Resolve(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	query := r.URL.Query()

	limit := defaultHistoryLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(w, types.ErrCodeInvalidRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	params := slackclient.HistoryParams{
		Limit:     limit,
		Oldest:    query.Get("oldest"),
		Latest:    query.Get("latest"),
		Cursor:    query.Get("cursor"),
		Inclusive: query.Get("inclusive") == "true",
	}

	page, err := h.slackClient.GetHistory(r.Context(), channel.ID, params)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, types.HistoryResponse{
		OK:         true,
		Channel:    channel.ID,
		Messages:   page.Messages,
		HasMore:    page.HasMore,
		NextCursor: page.NextCursor,
	})
}
