package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	entryDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(entryDate, createdAt, "entry-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	cursor, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, entryDate, cursor.EntryDate)
	assert.Equal(t, createdAt, cursor.CreatedAt)
	assert.Equal(t, "entry-1", cursor.EntryID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	cases := map[string]string{
		"not base64":   "%%%",
		"missing part": base64.StdEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z|x")),
		"bad date":     base64.StdEncoding.EncodeToString([]byte("yesterday|2024-01-01T00:00:00Z|id")),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeToken(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestCursor_After(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	c := Cursor{EntryDate: d, CreatedAt: d.Add(time.Hour), EntryID: "m"}

	assert.True(t, c.After(d.AddDate(0, 0, -1), d, "z"), "earlier date comes after")
	assert.False(t, c.After(d.AddDate(0, 0, 1), d, "a"), "later date comes before")
	assert.True(t, c.After(d, d, "z"), "same date, earlier creation")
	assert.True(t, c.After(d, d.Add(time.Hour), "a"), "tie broken by id")
	assert.False(t, c.After(d, d.Add(time.Hour), "m"), "the cursor itself is excluded")
}
