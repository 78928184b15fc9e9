// Package slack provides error types and handling for Slack API operations.
package slack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mdasif-me/slack-bot/pkg/types"
)

// IsRateLimited checks if the error is a rate limiting error.
func IsRateLimited(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeRateLimited)
}

// IsInvalidToken checks if the error is an invalid token error.
func IsInvalidToken(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeInvalidToken)
}

// IsMissingScope checks if the error is a missing OAuth scope error.
func IsMissingScope(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeMissingScope)
}

// IsChannelNotFound checks if the error is a channel not found error.
func IsChannelNotFound(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeChannelNotFound)
}

// IsNotInChannel checks if the error is a "not in channel" error.
func IsNotInChannel(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeNotInChannel)
}

// IsMessageNotFound checks if the error is a message not found error.
func IsMessageNotFound(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeMessageNotFound)
}

// IsPermissionDenied checks if the error is a permission denied error.
func IsPermissionDenied(err error) bool {
	return isSlackErrorCode(err, types.ErrCodePermissionDenied)
}

// IsAlreadyInChannel checks if the error is an "already in channel" join error.
func IsAlreadyInChannel(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeAlreadyInChannel)
}

// IsJoinNotSupported checks if the error indicates the conversation type
// cannot be joined via the API (IMs, group DMs, some private channels).
func IsJoinNotSupported(err error) bool {
	return isSlackErrorCode(err, types.ErrCodeJoinNotSupported)
}

// isSlackErrorCode checks if the error is a SlackError with the given code.
func isSlackErrorCode(err error, code string) bool {
	var slackErr *types.SlackError
	if errors.As(err, &slackErr) {
		return slackErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from a SlackError.
// Returns an empty string if the error is not a SlackError.
func GetErrorCode(err error) string {
	var slackErr *types.SlackError
	if errors.As(err, &slackErr) {
		return slackErr.Code
	}
	return ""
}

// wrapSlackError converts Slack API errors to our typed errors.
// This function examines the error string to determine the specific error type
// and returns an appropriate SlackError with a helpful message.
func wrapSlackError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for rate limiting
	if strings.Contains(errStr, "rate_limit") || strings.Contains(errStr, "ratelimited") {
		return types.NewSlackError(types.ErrCodeRateLimited,
			"Slack API rate limit exceeded. Please wait and try again.")
	}

	// Check for authentication errors
	if strings.Contains(errStr, "invalid_auth") || strings.Contains(errStr, "not_authed") ||
		strings.Contains(errStr, "token_revoked") || strings.Contains(errStr, "token_expired") {
		return types.NewSlackError(types.ErrCodeInvalidToken,
			"Invalid or expired Slack bot token. Please check your SLACK_BOT_TOKEN.")
	}

	// Check for token scope errors
	if strings.Contains(errStr, "missing_scope") {
		return types.NewSlackError(types.ErrCodeMissingScope,
			"Slack bot token lacks a required OAuth scope for this operation. "+
				"Review the app's scopes under 'OAuth & Permissions' and reinstall it.")
	}

	// Check for join attempts on channels the bot is already in
	if strings.Contains(errStr, "already_in_channel") {
		return types.NewSlackError(types.ErrCodeAlreadyInChannel,
			"Bot is already a member of this channel.")
	}

	// Check for conversation types that cannot be joined via the API
	if strings.Contains(errStr, "method_not_supported_for_channel_type") {
		return types.NewSlackError(types.ErrCodeJoinNotSupported,
			"This conversation type cannot be joined via the API. "+
				"For private channels, invite the bot with /invite instead.")
	}

	// Check for channel not found
	if strings.Contains(errStr, "channel_not_found") {
		return types.NewSlackError(types.ErrCodeChannelNotFound,
			"Channel not found. The channel may have been deleted or the ID is incorrect.")
	}

	// Check for not in channel
	if strings.Contains(errStr, "not_in_channel") {
		return types.NewSlackError(types.ErrCodeNotInChannel,
			"Bot is not a member of this channel. Please invite the bot to the channel.")
	}

	// Check for permission denied
	if strings.Contains(errStr, "access_denied") || strings.Contains(errStr, "is_archived") ||
		strings.Contains(errStr, "restricted_action") {
		return types.NewSlackError(types.ErrCodePermissionDenied,
			"Access denied. The channel may be archived or the bot lacks permissions.")
	}

	// Check for message not found
	if strings.Contains(errStr, "message_not_found") || strings.Contains(errStr, "thread_not_found") {
		return types.NewSlackError(types.ErrCodeMessageNotFound,
			"Message or thread not found.")
	}

	// Generic error wrapping
	return types.NewSlackError(types.ErrCodeSlackError, fmt.Sprintf("Slack API error: %s", errStr))
}
