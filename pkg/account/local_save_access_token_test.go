package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/account"
	"github.com/dmitrymomot/authform/pkg/cache"
)

func TestLocalSaveAccessToken_Save(t *testing.T) {
	t.Parallel()

	t.Run("stores token under accessToken", func(t *testing.T) {
		t.Parallel()

		storage := cache.NewMemoryStorage(10)
		save := account.NewLocalSaveAccessToken(storage)

		require.NoError(t, save.Save(context.Background(), "tok"))

		v, err := storage.Get(context.Background(), "accessToken")
		require.NoError(t, err)
		assert.Equal(t, "tok", v)
	})

	t.Run("rejects empty token without touching storage", func(t *testing.T) {
		t.Parallel()

		storage := &MockSetStorage{}
		err := account.NewLocalSaveAccessToken(storage).Save(context.Background(), "")

		assert.ErrorIs(t, err, account.ErrUnexpected)
		storage.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wraps storage failures", func(t *testing.T) {
		t.Parallel()

		storage := &MockSetStorage{}
		storeErr := errors.New("disk full")
		storage.On("Set", mock.Anything, account.AccessTokenKey, "tok").Return(storeErr).Once()

		err := account.NewLocalSaveAccessToken(storage).Save(context.Background(), "tok")
		assert.ErrorIs(t, err, account.ErrUnexpected)
		assert.ErrorIs(t, err, storeErr)
		storage.AssertExpectations(t)
	})

	t.Run("keeps one token per subject", func(t *testing.T) {
		t.Parallel()

		storage := cache.NewMemoryStorage(10)
		save := account.NewLocalSaveAccessToken(storage)

		require.NoError(t, save.Save(account.WithSubject(context.Background(), "alice@example.com"), "alice-token"))
		require.NoError(t, save.Save(account.WithSubject(context.Background(), "bob@example.com"), "bob-token"))

		v, err := storage.Get(context.Background(), "accessToken:alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice-token", v)

		v, err = storage.Get(context.Background(), account.TokenKey("bob@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "bob-token", v)

		_, err = storage.Get(context.Background(), account.AccessTokenKey)
		assert.ErrorIs(t, err, cache.ErrNotFound)
	})
}

func TestSubjectFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, account.SubjectFromContext(context.Background()))
	assert.Equal(t, "ann", account.SubjectFromContext(account.WithSubject(context.Background(), "ann")))
	assert.Equal(t, "accessToken", account.TokenKey(""))
	assert.Equal(t, "accessToken:ann", account.TokenKey("ann"))
}
