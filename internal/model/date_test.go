package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 10)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-10"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-10"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))

	// Unknown shapes are rejected with a usable message.
	var bad Date
	err = json.Unmarshal([]byte(`"10/03/2026"`), &bad)
	assert.Error(t, err)

	// Null leaves the value untouched.
	var untouched Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &untouched))
	assert.True(t, untouched.IsZero())
}

func TestDateParse(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", d.String())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-10", d.String())

	require.NoError(t, d.Scan("2026-04-01"))
	assert.Equal(t, "2026-04-01", d.String())

	require.NoError(t, d.Scan([]byte("2026-05-02")))
	assert.Equal(t, "2026-05-02", d.String())

	assert.Error(t, d.Scan(12345))
}

func TestDateValue(t *testing.T) {
	d := NewDate(2026, time.March, 10)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", v)
}
