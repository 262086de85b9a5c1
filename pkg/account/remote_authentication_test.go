package account_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/httpclient"
)

func apiServer(t *testing.T, status int, body string, seen func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteAuthentication_Auth(t *testing.T) {
	t.Parallel()

	params := account.AuthenticationParams{Email: "user@example.com", Password: "secret1"}

	t.Run("posts credentials to the url", func(t *testing.T) {
		t.Parallel()

		var got map[string]string
		var method, path string
		srv := apiServer(t, http.StatusOK, `{"accessToken":"tok","name":"Ann"}`, func(r *http.Request) {
			method, path = r.Method, r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&got)
		})

		auth := account.NewRemoteAuthentication(srv.URL+"/api/login", httpclient.New())
		acc, err := auth.Auth(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, account.Account{AccessToken: "tok", Name: "Ann"}, acc)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "/api/login", path)
		assert.Equal(t, map[string]string{"email": "user@example.com", "password": "secret1"}, got)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"invalid credentials on 401", http.StatusUnauthorized, `{"error":"nope"}`, account.ErrInvalidCredentials},
		{"unexpected on 400", http.StatusBadRequest, ``, account.ErrUnexpected},
		{"unexpected on 404", http.StatusNotFound, ``, account.ErrUnexpected},
		{"unexpected on 500", http.StatusInternalServerError, ``, account.ErrUnexpected},
		{"unexpected when token is missing", http.StatusOK, `{"name":"Ann"}`, account.ErrUnexpected},
		{"unexpected on malformed body", http.StatusOK, `{"accessToken":`, account.ErrUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := apiServer(t, tt.status, tt.body, nil)
			auth := account.NewRemoteAuthentication(srv.URL, httpclient.New())

			acc, err := auth.Auth(context.Background(), params)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, acc)
		})
	}

	t.Run("unexpected on transport failure", func(t *testing.T) {
		t.Parallel()

		client := &MockPostClient{}
		client.On("Post", mock.Anything, httpclient.Request{URL: "http://api/login", Body: params}).
			Return(nil, httpclient.ErrRequestFailed).Once()

		_, err := account.NewRemoteAuthentication("http://api/login", client).Auth(context.Background(), params)
		assert.ErrorIs(t, err, account.ErrUnexpected)
		assert.ErrorIs(t, err, httpclient.ErrRequestFailed)
		client.AssertExpectations(t)
	})

	t.Run("panics without client", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { account.NewRemoteAuthentication("http://api", nil) })
	})
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, account.Message(nil))
	assert.Equal(t, account.ErrInvalidCredentials.Error(), account.Message(account.ErrInvalidCredentials))
	assert.Equal(t, account.ErrEmailInUse.Error(), account.Message(account.ErrEmailInUse))
	assert.Equal(t, account.ErrUnexpected.Error(),
		account.Message(errors.Join(account.ErrUnexpected, errors.New("dial tcp: connection refused"))))
	assert.Equal(t, account.ErrUnexpected.Error(), account.Message(errors.New("boom")))
}
