package generation_test

import (
	"context"
	"sync"

	"github.com/slidegenie/slidegenie-api/internal/generation"
)

// stubClient is a canned-reply LLMClient for tests. It records every
// request so tests can assert on prompts and sampling parameters.
type stubClient struct {
	mu       sync.Mutex
	requests []generation.Request
	fn       func(req generation.Request) (string, error)
}

func (s *stubClient) Complete(_ context.Context, req generation.Request) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return s.fn(req)
}

func (s *stubClient) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *stubClient) lastRequest() generation.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

// reply returns a stubClient that answers every request with the same text.
func reply(text string) *stubClient {
	return &stubClient{fn: func(generation.Request) (string, error) {
		return text, nil
	}}
}

// fail returns a stubClient that answers every request with the same error.
func fail(err error) *stubClient {
	return &stubClient{fn: func(generation.Request) (string, error) {
		return "", err
	}}
}
