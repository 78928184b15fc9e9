// Package types provides shared type definitions for the Slack HTTP bridge.
package types

// Message represents a Slack message as returned by the history endpoint.
type Message struct {
	// User is the Slack user ID of the message author.
	User string `json:"user"`
	// Text is the message content.
	Text string `json:"text"`
	// Timestamp is the message timestamp in Slack API format (e.g., "1234567890.123456").
	Timestamp string `json:"ts"`
	// ThreadTS is the parent message timestamp if this message is part of a thread.
	// Empty string if the message is not a thread reply.
	ThreadTS string `json:"thread_ts,omitempty"`
	// ReplyCount is the number of replies in the thread (only set on parent messages).
	ReplyCount int `json:"reply_count,omitempty"`
}

// Channel represents a Slack conversation as returned by the channel endpoints.
type Channel struct {
	// ID is the Slack channel identifier (e.g., "C01234567").
	ID string `json:"id"`
	// Name is the channel name without the leading '#'.
	Name string `json:"name,omitempty"`
	// IsPrivate indicates whether the channel is private.
	IsPrivate bool `json:"is_private"`
	// IsArchived indicates whether the channel has been archived.
	IsArchived bool `json:"is_archived,omitempty"`
	// NumMembers is the member count, when the listing includes it.
	NumMembers int `json:"num_members,omitempty"`
	// Topic is the channel topic text.
	Topic string `json:"topic,omitempty"`
	// Purpose is the channel purpose text.
	Purpose string `json:"purpose,omitempty"`
}

// SendMessageRequest is the body of POST /api/v1/messages.
type SendMessageRequest struct {
	// Channel is a channel ID, a channel name, or a "#name" token.
	Channel string `json:"channel"`
	// Text is the message text to post.
	Text string `json:"text"`
	// ThreadTS, when set, posts the message as a thread reply.
	ThreadTS string `json:"thread_ts,omitempty"`
	// Username overrides the bot display name for this message.
	Username string `json:"username,omitempty"`
	// IconEmoji overrides the bot icon for this message (e.g., ":robot_face:").
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// SendMessageResponse is the body of a successful message post.
type SendMessageResponse struct {
	OK bool `json:"ok"`
	// Channel is the resolved channel ID the message was posted to.
	Channel string `json:"channel"`
	// Timestamp is the Slack timestamp of the posted message.
	Timestamp string `json:"ts"`
}

// HistoryResponse is the body of GET /api/v1/channels/{id}/history.
type HistoryResponse struct {
	OK       bool      `json:"ok"`
	Channel  string    `json:"channel"`
	Messages []Message `json:"messages"`
	// HasMore indicates more history is available beyond this page.
	HasMore bool `json:"has_more"`
	// NextCursor is the pagination cursor for the next page, if any.
	NextCursor string `json:"next_cursor,omitempty"`
}

// ListChannelsResponse is the body of GET /api/v1/channels.
type ListChannelsResponse struct {
	OK       bool      `json:"ok"`
	Channels []Channel `json:"channels"`
	// NextCursor is the pagination cursor for the next page, if any.
	NextCursor string `json:"next_cursor,omitempty"`
}

// ResolveChannelResponse is the body of GET /api/v1/channels/resolve.
type ResolveChannelResponse struct {
	OK bool `json:"ok"`
	// ID is the resolved channel ID.
	ID string `json:"id"`
	// Name is the channel name, when the resolution path knows it.
	// ID-shaped inputs are passed through without a lookup, so Name may be empty.
	Name      string `json:"name,omitempty"`
	IsPrivate bool   `json:"is_private"`
}

// WebhookRequest is the body of POST /webhook. It mirrors the field set of
// Slack's incoming webhooks; unknown fields are ignored.
type WebhookRequest struct {
	Text      string `json:"text"`
	Channel   string `json:"channel,omitempty"`
	Username  string `json:"username,omitempty"`
	IconEmoji string `json:"icon_emoji,omitempty"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	OK bool `json:"ok"`
	// Error is the machine-readable error code.
	Error string `json:"error"`
	// Message is a human-readable description with remediation hints.
	Message string `json:"message"`
}

// SlackError represents an error from the Slack API or request validation.
type SlackError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`
	// Message is a human-readable error description.
	Message string `json:"message"`
}

// Error implements the error interface for SlackError.
func (e *SlackError) Error() string {
	return e.Message
}

// Common error codes for bridge operations.
const (
	// ErrCodeInvalidRequest indicates the request body or query could not be parsed.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeMissingText indicates a post request without message text.
	ErrCodeMissingText = "missing_text"
	// ErrCodeMissingChannel indicates a post request without a channel and no default configured.
	ErrCodeMissingChannel = "missing_channel"
	// ErrCodeChannelNotFound indicates the channel could not be resolved or found.
	ErrCodeChannelNotFound = "channel_not_found"
	// ErrCodeNotInChannel indicates the bot is not a member of the channel.
	ErrCodeNotInChannel = "not_in_channel"
	// ErrCodeMessageNotFound indicates the requested message could not be found.
	ErrCodeMessageNotFound = "message_not_found"
	// ErrCodeRateLimited indicates the Slack API rate limit was exceeded.
	ErrCodeRateLimited = "rate_limited"
	// ErrCodeInvalidToken indicates the Slack bot token is invalid or expired.
	ErrCodeInvalidToken = "invalid_token"
	// ErrCodeMissingScope indicates the token lacks an OAuth scope the operation needs.
	ErrCodeMissingScope = "missing_scope"
	// ErrCodePermissionDenied indicates the bot lacks required permissions.
	ErrCodePermissionDenied = "permission_denied"
	// ErrCodeAlreadyInChannel indicates a join attempt on a channel the bot is already in.
	ErrCodeAlreadyInChannel = "already_in_channel"
	// ErrCodeJoinNotSupported indicates the conversation type cannot be joined via the API.
	ErrCodeJoinNotSupported = "join_not_supported"
	// ErrCodeSlackError is the fallback code for unrecognized Slack API errors.
	ErrCodeSlackError = "slack_error"
)

// NewSlackError creates a new SlackError with the given code and message.
func NewSlackError(code, message string) *SlackError {
	return &SlackError{
		Code:    code,
		Message: message,
	}
}
