package modio_test

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modio/go-modio/pkg/modio"
)

func TestUnixTime(t *testing.T) {
	t.Parallel()
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	var v struct {
		DateAdded modio.UnixTime `json:"date_added"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date_added":1700000000}`), &v))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), v.DateAdded.Time())
	assert.Equal(t, "2023-11-14T22:13:20Z", v.DateAdded.String())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"date_added":1700000000}`, string(out))
}

func TestUnixTime_Invalid(t *testing.T) {
	t.Parallel()
	var v modio.UnixTime
	assert.Error(t, v.UnmarshalJSON([]byte(`"2023-11-14"`)))
}
