package session_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/sessionkit/pkg/apiclient"
)

// MockAPI is a mock implementation of session.API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CurrentUser(ctx context.Context) (*apiclient.Envelope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.Envelope), args.Error(1)
}

func (m *MockAPI) Logout(ctx context.Context) (*apiclient.Envelope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.Envelope), args.Error(1)
}
