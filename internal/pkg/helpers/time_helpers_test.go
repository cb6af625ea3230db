package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthDate(t *testing.T) {
	parsed, err := ParseBirthDate("25-03-1999")
	require.NoError(t, err)
	assert.Equal(t, 1999, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 25, parsed.Day())
}

func TestParseBirthDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "1999-03-25", "25/03/1999", "32-01-2000"} {
		_, err := ParseBirthDate(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestFormatBirthDate_RoundTrip(t *testing.T) {
	parsed, err := ParseBirthDate("01-12-2005")
	require.NoError(t, err)
	assert.Equal(t, "01-12-2005", FormatBirthDate(parsed))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
}
