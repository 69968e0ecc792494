package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "08:30", want: "08:30"},
		{name: "postgres time", input: "17:05:00", want: "17:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "surrounding spaces", input: " 09:00 ", want: "09:00"},
		{name: "single digit hour", input: "8:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = MustTimeString("23:30").AddMinutes(30)
	require.ErrorIs(t, err, ErrOutOfDay)

	_, err = MustTimeString("00:10").AddMinutes(-15)
	require.ErrorIs(t, err, ErrOutOfDay)
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.False(t, nine.IsAfter(nine))
	assert.True(t, nine.Equal(TimeString("09:00")))
	assert.Equal(t, 540, nine.Minutes())
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 3, 10, 23, 59, 59, 999, loc)

	got := MustTimeString("08:15").OnDate(date)

	assert.Equal(t, time.Date(2025, 3, 10, 8, 15, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("07:30:00")))
	assert.Equal(t, TimeString("07:30"), ts)

	require.NoError(t, ts.Scan("18:00"))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 6, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("06:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := MustTimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("1200").Value()
	require.ErrorIs(t, err, ErrInvalidFormat)
}
