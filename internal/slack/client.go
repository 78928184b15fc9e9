// Package slack provides a wrapper around the Slack API client
// for posting messages, fetching history, and working with channels.
package slack

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/mdasif-me/slack-bot/internal/metrics"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// Client wraps the Slack API client behind the small surface the bridge needs.
type Client struct {
	api *slack.Client
}

// NewClient creates a new Slack client with the provided bot token.
func NewClient(token string) *Client {
	return &Client{
		api: slack.New(token),
	}
}

// PostParams carries the optional fields of a message post.
type PostParams struct {
	// ThreadTS, when set, posts the message as a thread reply.
	ThreadTS string
	// Username overrides the bot display name (requires chat:write.customize).
	Username string
	// IconEmoji overrides the bot icon (requires chat:write.customize).
	IconEmoji string
}

// PostMessage posts a message to a channel via chat.postMessage.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - channelID: The resolved Slack channel ID (e.g., "C01234567")
//   - text: The message text
//   - params: Optional thread timestamp and display overrides
//
// Returns the channel ID and timestamp of the posted message.
func (c *Client) PostMessage(ctx context.Context, channelID, text string, params PostParams) (string, string, error) {
	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if params.ThreadTS != "" {
		opts = append(opts, slack.MsgOptionTS(params.ThreadTS))
	}
	if params.Username != "" {
		opts = append(opts, slack.MsgOptionUsername(params.Username))
	}
	if params.IconEmoji != "" {
		opts = append(opts, slack.MsgOptionIconEmoji(params.IconEmoji))
	}

	channel, ts, err := c.api.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		metrics.IncSlackCall("chat.postMessage", "error")
		return "", "", wrapSlackError(err)
	}

	metrics.IncSlackCall("chat.postMessage", "ok")
	return channel, ts, nil
}

// HistoryParams carries the pagination and range options of a history fetch.
type HistoryParams struct {
	// Limit is the page size. Callers are expected to clamp it to 1..1000
	// before it reaches the API.
	Limit int
	// Oldest and Latest bound the timestamp range, in Slack API format.
	Oldest string
	Latest string
	// Cursor is the pagination cursor from a previous page.
	Cursor string
	// Inclusive includes messages with timestamps equal to Oldest/Latest.
	Inclusive bool
}

// HistoryPage is one page of conversation history.
type HistoryPage struct {
	Messages   []types.Message
	HasMore    bool
	NextCursor string
}

// GetHistory retrieves a page of messages from a channel via conversations.history.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - channelID: The resolved Slack channel ID
//   - params: Page size, range bounds, and pagination cursor
//
// Returns the page of messages in the order Slack returns them (newest first).
func (c *Client) GetHistory(ctx context.Context, channelID string, params HistoryParams) (*HistoryPage, error) {
	apiParams := &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     params.Limit,
		Oldest:    params.Oldest,
		Latest:    params.Latest,
		Cursor:    params.Cursor,
		Inclusive: params.Inclusive,
	}

	history, err := c.api.GetConversationHistoryContext(ctx, apiParams)
	if err != nil {
		metrics.IncSlackCall("conversations.history", "error")
		return nil, wrapSlackError(err)
	}

	if !history.Ok {
		metrics.IncSlackCall("conversations.history", "error")
		return nil, wrapSlackError(fmt.Errorf("%s", history.Error))
	}

	metrics.IncSlackCall("conversations.history", "ok")

	page := &HistoryPage{
		Messages: make([]types.Message, 0, len(history.Messages)),
		HasMore:  history.HasMore,
	}
	for i := range history.Messages {
		page.Messages = append(page.Messages, *convertMessage(&history.Messages[i]))
	}
	page.NextCursor = history.ResponseMetaData.NextCursor

	return page, nil
}

// ListParams carries the filter and pagination options of a channel listing.
type ListParams struct {
	// Types is the conversation types to include (e.g., "public_channel").
	Types []string
	// Cursor is the pagination cursor from a previous page.
	Cursor string
	// Limit is the page size.
	Limit int
	// ExcludeArchived drops archived channels from the listing.
	ExcludeArchived bool
}

// ListChannels retrieves one page of channels via conversations.list.
//
// Returns the channels and the pagination cursor for the next page
// (empty when the listing is exhausted).
func (c *Client) ListChannels(ctx context.Context, params ListParams) ([]types.Channel, string, error) {
	apiParams := &slack.GetConversationsParameters{
		Types:           params.Types,
		Cursor:          params.Cursor,
		Limit:           params.Limit,
		ExcludeArchived: params.ExcludeArchived,
	}

	channels, nextCursor, err := c.api.GetConversationsContext(ctx, apiParams)
	if err != nil {
		metrics.IncSlackCall("conversations.list", "error")
		return nil, "", wrapSlackError(err)
	}

	metrics.IncSlackCall("conversations.list", "ok")

	result := make([]types.Channel, 0, len(channels))
	for i := range channels {
		result = append(result, *convertChannel(&channels[i]))
	}
	return result, nextCursor, nil
}

// GetChannelInfo looks up a single channel by ID via conversations.info.
func (c *Client) GetChannelInfo(ctx context.Context, channelID string) (*types.Channel, error) {
	channel, err := c.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{
		ChannelID:         channelID,
		IncludeNumMembers: true,
	})
	if err != nil {
		metrics.IncSlackCall("conversations.info", "error")
		return nil, wrapSlackError(err)
	}

	metrics.IncSlackCall("conversations.info", "ok")
	return convertChannel(channel), nil
}

// JoinChannel joins a channel by ID via conversations.join.
//
// Slack reports "already_in_channel" as a warning on a successful join, so
// re-joining a channel the bot is already in returns nil.
func (c *Client) JoinChannel(ctx context.Context, channelID string) error {
	_, _, _, err := c.api.JoinConversationContext(ctx, channelID)
	if err != nil {
		metrics.IncSlackCall("conversations.join", "error")
		return wrapSlackError(err)
	}

	metrics.IncSlackCall("conversations.join", "ok")
	return nil
}

// convertMessage converts a Slack API message to our Message type.
func convertMessage(msg *slack.Message) *types.Message {
	return &types.Message{
		User:       msg.User,
		Text:       msg.Text,
		Timestamp:  msg.Timestamp,
		ThreadTS:   msg.ThreadTimestamp,
		ReplyCount: msg.ReplyCount,
	}
}

// convertChannel converts a Slack API channel to our Channel type.
func convertChannel(ch *slack.Channel) *types.Channel {
	return &types.Channel{
		ID:         ch.ID,
		Name:       ch.Name,
		IsPrivate:  ch.IsPrivate,
		IsArchived: ch.IsArchived,
		NumMembers: ch.NumMembers,
		Topic:      ch.Topic.Value,
		Purpose:    ch.Purpose.Value,
	}
}

// ClientInterface defines the interface for Slack client operations.
// This interface is useful for mocking in tests.
type ClientInterface interface {
	PostMessage(ctx context.Context, channelID, text string, params PostParams) (string, string, error)
	GetHistory(ctx context.Context, channelID string, params HistoryParams) (*HistoryPage, error)
	ListChannels(ctx context.Context, params ListParams) ([]types.Channel, string, error)
	GetChannelInfo(ctx context.Context, channelID string) (*types.Channel, error)
	JoinChannel(ctx context.Context, channelID string) error
}

// Ensure Client implements ClientInterface.
var _ ClientInterface = (*Client)(nil)
