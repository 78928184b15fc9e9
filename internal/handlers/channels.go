package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

const (
	// defaultListLimit is used when the request does not specify one.
	defaultListLimit = 200
	// maxListLimit is Slack's documented cap for conversations.list.
	maxListLimit = 1000
)

// validChannelTypes are the conversation types conversations.list accepts.
var validChannelTypes = map[string]bool{
	"public_channel":  true,
	"private_channel": true,
	"im":              true,
	"mpim":            true,
}

// ListChannelsHandler handles GET /api/v1/channels.
type ListChannelsHandler struct {
	slackClient slackclient.ClientInterface
	logger      *zap.Logger
}

// NewListChannelsHandler creates a new ListChannelsHandler with the given
// Slack client.
func NewListChannelsHandler(client slackclient.ClientInterface, logger *zap.Logger) *ListChannelsHandler {
	return &ListChannelsHandler{
		slackClient: client,
		logger:      logger,
	}
}

// Handle processes a channel listing request. Pagination is cursor-based
// and passed through to Slack unchanged.
func (h *ListChannelsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	channelTypes := []string{"public_channel"}
	if raw := query.Get("types"); raw != "" {
		channelTypes = strings.Split(raw, ",")
		for i, t := range channelTypes {
			channelTypes[i] = strings.TrimSpace(t)
			if !validChannelTypes[channelTypes[i]] {
				badRequest(w, types.ErrCodeInvalidRequest,
					"types must be a comma-separated subset of: public_channel, private_channel, im, mpim")
				return
			}
		}
	}

	limit := defaultListLimit
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
	if limit > maxListLimit {
		limit = maxListLimit
	}

	excludeArchived := true
	if raw := query.Get("exclude_archived"); raw != "" {
		excludeArchived = raw != "false"
	}

	channels, nextCursor, err := h.slackClient.ListChannels(r.Context(), slackclient.ListParams{
		Types:           channelTypes,
		Cursor:          query.Get("cursor"),
		Limit:           limit,
		ExcludeArchived: excludeArchived,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, types.ListChannelsResponse{
		OK:         true,
		Channels:   channels,
		NextCursor: nextCursor,
	})
}
