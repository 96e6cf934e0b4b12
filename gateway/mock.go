package gateway

import "context"

// MockChatClient is a canned ChatClient for tests and local debugging. It
// records the last request and replies with Content or Err.
type MockChatClient struct {
	Content string
	Err     error

	LastRequest ChatRequest
}

func (m *MockChatClient) Complete(_ context.Context, req ChatRequest) (string, error) {
	m.LastRequest = req
	if m.Err != nil {
		return "", m.Err
	}
	return m.Content, nil
}
