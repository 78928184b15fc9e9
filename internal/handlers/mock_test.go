package handlers

import (
	"context"

	slackclient "github.com/mdasif-me/slack-bot/internal/slack"
	"github.com/mdasif-me/slack-bot/pkg/types"
)

// mockClient is a test double for slackclient.ClientInterface with
// injectable behavior per method.
type mockClient struct {
	postMessageFunc    func(ctx context.Context, channelID, text string, params slackclient.PostParams) (string, string, error)
	getHistoryFunc     func(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error)
	listChannelsFunc   func(ctx context.Context, params slackclient.ListParams) ([]types.Channel, string, error)
	getChannelInfoFunc func(ctx context.Context, channelID string) (*types.Channel, error)
	joinChannelFunc    func(ctx context.Context, channelID string) error
}

func (m *mockClient) PostMessage(ctx context.Context, channelID, text string, params slackclient.PostParams) (string, string, error) {
	if m.postMessageFunc != nil {
		return m.postMessageFunc(ctx, channelID, text, params)
	}
	return channelID, "1355517523.000008", nil
}

func (m *mockClient) GetHistory(ctx context.Context, channelID string, params slackclient.HistoryParams) (*slackclient.HistoryPage, error) {
	if m.getHistoryFunc != nil {
		return m.getHistoryFunc(ctx, channelID, params)
	}
	return &slackclient.HistoryPage{}, nil
}

func (m *mockClient) ListChannels(ctx context.Context, params slackclient.ListParams) ([]types.Channel, string, error) {
	if m.listChannelsFunc != nil {
		return m.listChannelsFunc(ctx, params)
	}
	return nil, "", nil
}

func (m *mockClient) GetChannelInfo(ctx context.Context, channelID string) (*types.Channel, error) {
	if m.getChannelInfoFunc != nil {
		return m.getChannelInfoFunc(ctx, channelID)
	}
	return nil, types.NewSlackError(types.ErrCodeChannelNotFound, "channel not found")
}

func (m *mockClient) JoinChannel(ctx context.Context, channelID string) error {
	if m.joinChannelFunc != nil {
		return m.joinChannelFunc(ctx, channelID)
	}
	return nil
}
