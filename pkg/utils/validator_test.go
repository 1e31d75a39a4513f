package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", true}, // 空值由业务逻辑决定是否允许
		{"not-an-email", false},
		{"a@b", false},
		{"@x.com", false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, ValidateEmailFormat(tc.email), "email: %q", tc.email)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		want    time.Time
	}{
		{in: "2001-09-11", want: time.Date(2001, 9, 11, 0, 0, 0, 0, time.UTC)},
		{in: "2001/9/1", want: time.Date(2001, 9, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2001-9-01", want: time.Date(2001, 9, 1, 0, 0, 0, 0, time.UTC)},
		{in: "", wantErr: true},
		{in: "11-09-2001", wantErr: true},
		{in: "not a date", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrInvalidDateFormat, "input: %q", tc.in)
			continue
		}
		require.NoError(t, err, "input: %q", tc.in)
		require.True(t, got.Equal(tc.want), "input: %q got %v", tc.in, got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	// 前端日期控件可能提交完整的ISO时间串
	got, err := ParseDate("2001-09-11T00:00:00Z")
	require.NoError(t, err)
	require.Equal(t, 2001, got.Year())
	require.Equal(t, time.September, got.Month())
	require.Equal(t, 11, got.Day())
}
