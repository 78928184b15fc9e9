package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

func newHistoryHandler(client *mockClient) *HistoryHandler {
	logger := zap.NewNop()
	return NewHistoryHandler(client, slackclient.NewResolver(client, logger), logger)
}

// getHistory routes the request through a ServeMux so the {id} path value
// is populated the same way as in production.
func getHistory(t *testing.T, h *HistoryHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/channels/{id}/history", h.Handle)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHistoryHandler_Success(t *testing.T) {
	var gotChannel string
	var gotParams slackclient.HistoryParams

	client := &mockClient{
		getHistoryFunc: func(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error) {
			gotChannel, gotParams = channelID, params
			return &slackclient.HistoryPage{
				Messages: []types.Message{
					{User: "U12345678", Text: "Hello, world!", Timestamp: "1355517523.000008"},
					{User: "U87654321", Text: "Hi there!", Timestamp: "1355517524.000009", ReplyCount: 2},
				},
				HasMore:    true,
				NextCursor: "cursor-2",
			}, nil
		},
	}
	h := newHistoryHandler(client)

	rec := getHistory(t, h,
		"/api/v1/channels/C01234567/history?limit=50&oldest=1355500000.000000&latest=1355600000.000000&cursor=cursor-1&inclusive=true")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp types.HistoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.OK || resp.Channel != "C01234567" || len(resp.Messages) != 2 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !resp.HasMore || resp.NextCursor != "cursor-2" {
		t.Errorf("pagination fields not forwarded: %+v", resp)
	}

	if gotChannel != "C01234567" {
		t.Errorf("fetched channel %q, want C01234567", gotChannel)
	}
	want := slackclient.HistoryParams{
		Limit:     50,
		Oldest:    "1355500000.000000",
		Latest:    "1355600000.000000",
		Cursor:    "cursor-1",
		Inclusive: true,
	}
	if gotParams != want {
		t.Errorf("params = %+v, want %+v", gotParams, want)
	}
}

func TestHistoryHandler_ResolvesName(t *testing.T) {
	var gotChannel string
	joinAttempted := false

	client := &mockClient{
		listChannelsFunc: func(ctx context.Context, params slackclient.ListParams) ([]types.Channel, string, error) {
			return []types.Channel{{ID: "C0GENERAL", Name: "general"}}, "", nil
		},
		getHistoryFunc: func(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error) {
			gotChannel = channelID
			return &slackclient.HistoryPage{}, nil
		},
		joinChannelFunc: func(ctx context.Context, channelID string) error {
			joinAttempted = true
			return nil
		},
	}
	h := newHistoryHandler(client)

	rec := getHistory(t, h, "/api/v1/channels/general/history")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	if gotChannel != "C0GENERAL" {
		t.Errorf("fetched %q, want resolved ID C0GENERAL", gotChannel)
	}
	if joinAttempted {
		t.Error("history fetch should not auto-join the channel")
	}
}

func TestHistoryHandler_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default", "", 100},
		{"above cap", "?limit=5000", 1000},
		{"below floor", "?limit=0", 1},
		{"negative", "?limit=-3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit int
			client := &mockClient{
				getHistoryFunc: func(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error) {
					gotLimit = params.Limit
					return &slackclient.HistoryPage{}, nil
				},
			}
			h := newHistoryHandler(client)

			rec := getHistory(t, h, "/api/v1/channels/C01234567/history"+tt.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", gotLimit, tt.wantLimit)
			}
		})
	}
}

func TestHistoryHandler_InvalidLimit(t *testing.T) {
	h := newHistoryHandler(&mockClient{})

	rec := getHistory(t, h, "/api/v1/channels/C01234567/history?limit=ten")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != types.ErrCodeInvalidRequest {
		t.Errorf("error code = %q, want invalid_request", resp.Error)
	}
}

func TestHistoryHandler_NotInChannel(t *testing.T) {
	client := &mockClient{
		getHistoryFunc: func(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error) {
			return nil, types.NewSlackError(types.ErrCodeNotInChannel, "bot not in channel")
		},
	}
	h := newHistoryHandler(client)

	rec := getHistory(t, h, "/api/v1/channels/C01234567/history")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != types.ErrCodeNotInChannel {
		t.Errorf("error code = %q, want not_in_channel", resp.Error)
	}
}
