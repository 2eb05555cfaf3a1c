package llm

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
)

const mockModel = "mock"

// MockResponse is one scripted reply. A non-nil Err is returned instead of
// content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider answers from a script, one entry per call, and keeps every
// request it saw in Calls. An exhausted script behaves like a backend that
// is down, which lets tests drive the chain and bank fallbacks.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: slices.Clone(script)}
}

func (m *MockProvider) ModelID() string { return mockModel }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	reply := m.script[0]
	m.script = m.script[1:]
	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Response{Content: reply.Content, Usage: reply.Usage, Model: mockModel, StopReason: "end"}, nil
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	m.script = append(m.script, r)
	m.mu.Unlock()
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
