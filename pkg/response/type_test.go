package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/pkg/response"
)

func TestDateTimeRoundTrip(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T15:30:00"`, string(b))

	var back response.DateTime
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, dt.Time().Equal(back.Time()))
}

func TestDateTimeAcceptsRFC3339(t *testing.T) {
	var dt response.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T17:30:00+02:00"`), &dt))
	assert.Equal(t, time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), dt.Time())
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	var dt response.DateTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}
