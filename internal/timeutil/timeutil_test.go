package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/timeutil"
)

func TestParseSeconds(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"90", 90},
		{" 5 ", 5},
		{"1m30s", 90},
		{"2h", 7200},
		{"1.5s", 2},
		{"0", 0},
		{"-3", -3},
	}

	for _, tc := range testCases {
		got, err := timeutil.ParseSeconds(tc.input)

		require.NoError(t, err, "input=%q", tc.input)
		assert.Equal(t, tc.want, got, "input=%q", tc.input)
	}

	_, err := timeutil.ParseSeconds("soon")
	assert.Error(t, err)
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

	end, err := timeutil.FromStr("in 10 minutes", now)
	require.NoError(t, err)

	assert.Equal(t, 600, timeutil.SecondsUntil(now, end))
}

func TestSecondsUntil(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, timeutil.SecondsUntil(now, now.Add(90*time.Second)))
	assert.Equal(t, 1, timeutil.SecondsUntil(now, now.Add(700*time.Millisecond)))
	assert.Equal(t, -60, timeutil.SecondsUntil(now, now.Add(-time.Minute)))
}
