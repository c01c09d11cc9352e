package timezone_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/timezone"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))

	loc := timezone.Load("Asia/Tehran")
	assert.Equal(t, "Asia/Tehran", loc.String())
}

func TestNowUsesAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestFormatAndParse(t *testing.T) {
	assert.Empty(t, timezone.Format(time.Time{}, time.RFC3339))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", timezone.Format(parsed, "2006-01-02"))
}
