package account

import (
	"context"
	"errors"
)

// LocalSaveAccessToken stores the access token under TokenKey of the
// context subject.
type LocalSaveAccessToken struct {
	storage SetStorage
}

var _ SaveAccessToken = (*LocalSaveAccessToken)(nil)

// NewLocalSaveAccessToken panics if storage is nil.
func NewLocalSaveAccessToken(storage SetStorage) *LocalSaveAccessToken {
	if storage == nil {
		panic("account: storage cannot be nil")
	}
	return &LocalSaveAccessToken{storage: storage}
}

// Save writes accessToken, keyed by the subject set with WithSubject.
func (s *LocalSaveAccessToken) Save(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return ErrUnexpected
	}
	if err := s.storage.Set(ctx, TokenKey(SubjectFromContext(ctx)), accessToken); err != nil {
		return errors.Join(ErrUnexpected, err)
	}
	return nil
}
