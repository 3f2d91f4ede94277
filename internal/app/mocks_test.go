package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Get(ctx context.Context, path string, withCredentials bool) ([]byte, error) {
	args := m.Called(ctx, path, withCredentials)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *mockTransport) PostJSON(ctx context.Context, path string, body any, withCredentials bool) ([]byte, error) {
	args := m.Called(ctx, path, body, withCredentials)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

type mockDialog struct {
	mock.Mock
}

func (m *mockDialog) Prompt(ctx context.Context, req core.PromptRequest) (core.PromptResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(core.PromptResult), args.Error(1)
}

type mockJoin struct {
	mock.Mock
}

func (m *mockJoin) Join(ctx context.Context, gameID, name string, color domain.Color) error {
	args := m.Called(ctx, gameID, name, color)
	return args.Error(0)
}
