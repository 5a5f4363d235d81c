package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1990-05-03", "May 3, 1990"},
		{"2001-12-31", "December 31, 2001"},
		{"2024-02-29T10:15:00Z", "February 29, 2024"},
		{"2024-02-29T10:15:00.123+00:00", "February 29, 2024"},
		{"2024-02-29T10:15:00.123+0000", "February 29, 2024"},
		{"not a date", InvalidDate},
		{"1990-13-40", InvalidDate},
		{"", NotProvided},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Date `json:"a"`
		B Date `json:"b"`
		C Date `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1990-05-03","b":641692800000,"c":null}`), &v))

	assert.Equal(t, Date("1990-05-03"), v.A)
	assert.Equal(t, Date("1990-05-03T00:00:00Z"), v.B)
	assert.Equal(t, Date(""), v.C)
	assert.Equal(t, "May 3, 1990", v.B.Format())
	assert.Equal(t, NotProvided, v.C.Format())
}

func TestDate_UnmarshalJSON_Rejects(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
	require.Error(t, json.Unmarshal([]byte(`{}`), &d))
}

func TestDate_DateOnly(t *testing.T) {
	assert.Equal(t, "1990-05-03", Date("1990-05-03T00:00:00Z").DateOnly())
	assert.Equal(t, "1990-05-03", Date("1990-05-03").DateOnly())
	assert.Equal(t, "garbage", Date("garbage").DateOnly())
	assert.Equal(t, "", Date("").DateOnly())
}
