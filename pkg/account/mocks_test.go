package account_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authform/pkg/httpclient"
)

// MockPostClient is a mock implementation of account.PostClient.
type MockPostClient struct {
	mock.Mock
}

func (m *MockPostClient) Post(ctx context.Context, req httpclient.Request) (*httpclient.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*httpclient.Response), args.Error(1)
}

// MockSetStorage is a mock implementation of account.SetStorage.
type MockSetStorage struct {
	mock.Mock
}

func (m *MockSetStorage) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
