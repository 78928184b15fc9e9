package slack

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mdasif-me/slack-bot/pkg/types"
)

// notFoundHint is appended to resolution failures so API consumers know how
// to discover valid channels.
const notFoundHint = "Use GET /api/v1/channels to list the channels visible to the bot."

// listPageSize is the page size used when scanning channel listings during
// name resolution.
const listPageSize = 1000

// Resolver resolves user-supplied channel tokens (IDs, names, or "#name")
// to channel IDs. Every invocation repeats the full lookup; results are not
// cached across requests.
type Resolver struct {
	client ClientInterface
	logger *zap.Logger
}

// NewResolver creates a new Resolver backed by the given client.
func NewResolver(client ClientInterface, logger *zap.Logger) *Resolver {
	return &Resolver{
		client: client,
		logger: logger,
	}
}

// Resolve resolves a channel token to a channel.
//
// The fallback chain:
//  1. ID-shaped tokens (C/G/D prefix) are treated as already resolved.
//  2. The public-channel listing is scanned for an exact name match.
//  3. The private-channel listing is scanned next.
//  4. The token is tried as an ID via conversations.info.
//
// If every step fails, a channel_not_found error is returned with a hint to
// use the listing endpoint.
func (r *Resolver) Resolve(ctx context.Context, token string) (*types.Channel, error) {
	if token == "" {
		return nil, types.NewSlackError(types.ErrCodeMissingChannel, "channel is required")
	}

	if isChannelID(token) {
		return &types.Channel{ID: token}, nil
	}

	name := strings.TrimPrefix(token, "#")

	// Public channels first.
	ch, err := r.findByName(ctx, name, "public_channel")
	if err != nil {
		return nil, err
	}
	if ch != nil {
		return ch, nil
	}

	// Then private channels. A listing failure here (commonly missing
	// groups:read) downgrades to a warning so public-only tokens keep working.
	ch, err = r.findByName(ctx, name, "private_channel")
	if err != nil {
		if IsMissingScope(err) || IsPermissionDenied(err) {
			r.logger.Warn("private channel listing unavailable during resolution",
				zap.String("channel", token),
				zap.Error(err))
		} else {
			return nil, err
		}
	}
	if ch != nil {
		return ch, nil
	}

	// Last resort: maybe the token is an ID with an unexpected shape.
	info, err := r.client.GetChannelInfo(ctx, name)
	if err == nil {
		return info, nil
	}
	r.logger.Debug("info lookup fallback failed during resolution",
		zap.String("channel", token),
		zap.Error(err))

	return nil, types.NewSlackError(types.ErrCodeChannelNotFound,
		fmt.Sprintf("channel %q not found. %s", token, notFoundHint))
}

// ResolveAndJoin resolves a channel token and then attempts to join the
// channel so a subsequent post does not fail with not_in_channel.
//
// Join outcomes already_in_channel and method_not_supported_for_channel_type
// are tolerated; missing_scope and channel_not_found are surfaced.
func (r *Resolver) ResolveAndJoin(ctx context.Context, token string) (string, error) {
	ch, err := r.Resolve(ctx, token)
	if err != nil {
		return "", err
	}

	// IMs cannot be joined, skip the call entirely.
	if strings.HasPrefix(ch.ID, "D") {
		return ch.ID, nil
	}

	if err := r.client.JoinChannel(ctx, ch.ID); err != nil {
		switch {
		case IsAlreadyInChannel(err), IsJoinNotSupported(err):
			// Fine either way: the bot can post.
		case IsMissingScope(err):
			return "", types.NewSlackError(types.ErrCodeMissingScope,
				"Cannot join channel: the bot token lacks the channels:join scope. "+
					"Add the scope and reinstall the app, or invite the bot manually.")
		case IsChannelNotFound(err):
			return "", types.NewSlackError(types.ErrCodeChannelNotFound,
				fmt.Sprintf("channel %q resolved to %s but the join attempt reported it missing. %s",
					token, ch.ID, notFoundHint))
		default:
			return "", err
		}
	}

	return ch.ID, nil
}

// findByName scans the listing of the given conversation type for an exact
// name match, following pagination cursors until the listing is exhausted.
// Returns (nil, nil) when no channel matches.
func (r *Resolver) findByName(ctx context.Context, name, channelType string) (*types.Channel, error) {
	params := ListParams{
		Types:           []string{channelType},
		Limit:           listPageSize,
		ExcludeArchived: true,
	}

	for {
		channels, nextCursor, err := r.client.ListChannels(ctx, params)
		if err != nil {
			return nil, err
		}

		for i := range channels {
			if channels[i].Name == name {
				return &channels[i], nil
			}
		}

		if nextCursor == "" {
			return nil, nil
		}
		params.Cursor = nextCursor
	}
}

// isChannelID checks if a token looks like a Slack conversation ID:
// a C (channel), G (legacy group), or D (IM) prefix followed by uppercase
// alphanumerics, 9 to 12 characters in total.
func isChannelID(s string) bool {
	if len(s) < 9 || len(s) > 12 {
		return false
	}
	switch s[0] {
	case 'C', 'G', 'D':
	default:
		return false
	}
	for _, c := range s[1:] {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
