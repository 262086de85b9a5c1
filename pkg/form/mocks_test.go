package form_test

import (
	"context"
	"maps"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/validation"
)

// validationSpy records every call and answers with a fixed message.
type validationSpy struct {
	mu      sync.Mutex
	message string
	calls   []spyCall
}

type spyCall struct {
	field string
	input validation.Input
}

func (s *validationSpy) Validate(field string, input validation.Input) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, spyCall{field: field, input: maps.Clone(input)})
	return s.message
}

func (s *validationSpy) setMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

func (s *validationSpy) last() spyCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}

type MockAuthentication struct {
	mock.Mock
}

func (m *MockAuthentication) Auth(ctx context.Context, params account.AuthenticationParams) (account.Account, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(account.Account), args.Error(1)
}

type MockAddAccount struct {
	mock.Mock
}

func (m *MockAddAccount) Add(ctx context.Context, params account.AddAccountParams) (account.Account, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(account.Account), args.Error(1)
}

type MockSaveAccessToken struct {
	mock.Mock
}

func (m *MockSaveAccessToken) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
