//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"rentify-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	// マイクロ秒精度に丸めて比較する
	ts := time.Date(2026, 2, 10, 9, 30, 15, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	decodedTime, decodedID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.True(t, decodedTime.Equal(ts))
	assert.Equal(t, id, decodedID)
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{"空文字", ""},
		{"base64でない", "%%%not-base64%%%"},
		{"バージョン接頭辞なし", base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.NewString()))},
		{"未知のバージョン", base64.URLEncoding.EncodeToString([]byte("v9:1234-" + uuid.NewString()))},
		{"区切りなし", base64.URLEncoding.EncodeToString([]byte("v1:noseparator"))},
		{"タイムスタンプが数値でない", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"UUIDが不正", base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
