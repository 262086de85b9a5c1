package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authform/pkg/requestid"
)

func serve(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("keeps valid incoming id", func(t *testing.T) {
		t.Parallel()
		ctxID, headerID := serve(t, "req_123-abc")
		assert.Equal(t, "req_123-abc", ctxID)
		assert.Equal(t, "req_123-abc", headerID)
	})

	for _, incoming := range []string{"", "has space", "a/b", "<script>", strings.Repeat("a", 129)} {
		t.Run("replaces "+incoming, func(t *testing.T) {
			t.Parallel()
			ctxID, headerID := serve(t, incoming)
			assert.Equal(t, ctxID, headerID)
			_, err := uuid.Parse(ctxID)
			require.NoError(t, err)
		})
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
