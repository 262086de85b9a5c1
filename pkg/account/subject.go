package account

import "context"

type subjectKey struct{}

// WithSubject stores the identity the access token belongs to, usually the
// account email, so a shared storage keeps one token per account.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the subject set by WithSubject, or "".
func SubjectFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey{}).(string); ok {
		return s
	}
	return ""
}

// TokenKey returns the storage key for subject's access token.
// An empty subject maps to AccessTokenKey.
func TokenKey(subject string) string {
	if subject == "" {
		return AccessTokenKey
	}
	return AccessTokenKey + ":" + subject
}
