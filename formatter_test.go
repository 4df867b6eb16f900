package datatable

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue_UnsupportedFallback(t *testing.T) {
	type point struct{ X, Y int }
	count := 42

	tests := []struct {
		name      string
		value     any
		formatter Formatter
		want      string
	}{
		{name: "unsupported falls back to Sprint", value: 42, formatter: UnsupportedFormatter{}, want: "42"},
		{name: "nil formatter", value: "Acme", formatter: nil, want: "Acme"},
		{name: "fallback dereferences pointer", value: &count, formatter: UnsupportedFormatter{}, want: "42"},
		{
			name:      "type formatter continues with kind",
			value:     42,
			formatter: NewTypeFormatter().WithTypeFormatter(reflect.TypeFor[int](), UnsupportedFormatter{}).WithKindFormatter(reflect.Int, PrintfFormatter("#%d")),
			want:      "#42",
		},
		{
			name:      "type formatter of dereferenced pointer",
			value:     &count,
			formatter: NewTypeFormatter().WithTypeFormatter(reflect.TypeFor[int](), PrintfFormatter("%04d")),
			want:      "0042",
		},
		{
			name:      "default formatter",
			value:     point{X: 1, Y: 2},
			formatter: NewTypeFormatter().WithKindFormatter(reflect.Int, UnsupportedFormatter{}).WithDefaultFormatter(SprintFormatter{}),
			want:      "{1 2}",
		},
		{name: "precision ignores ints", value: 7, formatter: PrecisionFormatter(2), want: "7"},
		{name: "precision", value: 2.5, formatter: PrecisionFormatter(2), want: "2.50"},
		{name: "null-like", value: (*int)(nil), formatter: SprintFormatter{}, want: Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value, tt.formatter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutFormatter(t *testing.T) {
	layout := LayoutFormatter(DisplayDateLayout)

	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{name: "time", value: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC), want: "Mar 9, 2024"},
		{name: "zero time", value: time.Time{}, want: Placeholder},
		{name: "date string", value: "2024-01-20", want: "Jan 20, 2024"},
		{name: "timestamp string", value: "2024-01-20T09:30:00Z", want: "Jan 20, 2024"},
		{name: "empty string", value: "", want: Placeholder},
		{name: "invalid string", value: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := layout.Format(reflect.ValueOf(tt.value))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := layout.Format(reflect.ValueOf(42))
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}
