package slack

import (
	"errors"
	"testing"

	"github.com/mdasif-me/slack-bot/pkg/types"
)

func TestWrapSlackError(t *testing.T) {
	tests := []struct {
		name     string
		errStr   string
		wantCode string
	}{
		{"rate limited", "slack rate limit exceeded, retry after 30s (ratelimited)", types.ErrCodeRateLimited},
		{"invalid auth", "invalid_auth", types.ErrCodeInvalidToken},
		{"not authed", "not_authed", types.ErrCodeInvalidToken},
		{"token revoked", "token_revoked", types.ErrCodeInvalidToken},
		{"missing scope", "missing_scope", types.ErrCodeMissingScope},
		{"already in channel", "already_in_channel", types.ErrCodeAlreadyInChannel},
		{"unjoinable type", "method_not_supported_for_channel_type", types.ErrCodeJoinNotSupported},
		{"channel not found", "channel_not_found", types.ErrCodeChannelNotFound},
		{"not in channel", "not_in_channel", types.ErrCodeNotInChannel},
		{"archived", "is_archived", types.ErrCodePermissionDenied},
		{"message not found", "message_not_found", types.ErrCodeMessageNotFound},
		{"unknown", "something_else_entirely", types.ErrCodeSlackError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapSlackError(errors.New(tt.errStr))
			if got := GetErrorCode(wrapped); got != tt.wantCode {
				t.Errorf("wrapSlackError(%q) code = %q, want %q", tt.errStr, got, tt.wantCode)
			}
		})
	}
}

func TestWrapSlackError_Nil(t *testing.T) {
	if err := wrapSlackError(nil); err != nil {
		t.Errorf("wrapSlackError(nil) = %v, want nil", err)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		code string
		pred func(error) bool
	}{
		{types.ErrCodeRateLimited, IsRateLimited},
		{types.ErrCodeInvalidToken, IsInvalidToken},
		{types.ErrCodeMissingScope, IsMissingScope},
		{types.ErrCodeChannelNotFound, IsChannelNotFound},
		{types.ErrCodeNotInChannel, IsNotInChannel},
		{types.ErrCodeMessageNotFound, IsMessageNotFound},
		{types.ErrCodePermissionDenied, IsPermissionDenied},
		{types.ErrCodeAlreadyInChannel, IsAlreadyInChannel},
		{types.ErrCodeJoinNotSupported, IsJoinNotSupported},
	}

	for _, tt := range tests {
		err := types.NewSlackError(tt.code, "boom")
		if !tt.pred(err) {
			t.Errorf("predicate for %q did not match its own code", tt.code)
		}
		if tt.pred(errors.New("boom")) {
			t.Errorf("predicate for %q matched a plain error", tt.code)
		}
	}
}

func TestGetErrorCode_PlainError(t *testing.T) {
	if code := GetErrorCode(errors.New("boom")); code != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", code)
	}
}
