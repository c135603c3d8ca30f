package modio

import (
	"strconv"
	"time"
)

// UnixTime is a time.Time encoded/decoded as unix timestamp in seconds, as used by the mod.io API.
type UnixTime time.Time

// UnmarshalJSON implements JSON decoding.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*t = UnixTime(time.Unix(v, 0).UTC())
	return nil
}

// MarshalJSON implements JSON encoding.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Time(t).Unix(), 10), nil
}

func (t UnixTime) Time() time.Time {
	return time.Time(t)
}

func (t UnixTime) String() string {
	return time.Time(t).Format(time.RFC3339)
}
