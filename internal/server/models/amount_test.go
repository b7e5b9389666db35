package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{name: "number", in: `4.5`, want: 4.5},
		{name: "integer", in: `12`, want: 12},
		{name: "numeric string", in: `"19.90"`, want: 19.9},
		{name: "padded numeric string", in: `" 7 "`, want: 7},
		{name: "non-numeric string kept silent", in: `"abc"`, want: 0},
		{name: "object kept silent", in: `{"x":1}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmount_Scan(t *testing.T) {
	var a Amount

	require.NoError(t, a.Scan(float64(3.25)))
	assert.Equal(t, Amount(3.25), a)

	require.NoError(t, a.Scan(int64(2)))
	assert.Equal(t, Amount(2), a)

	require.NoError(t, a.Scan([]byte("10.5")))
	assert.Equal(t, Amount(10.5), a)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, Amount(0), a)

	assert.Error(t, a.Scan(true))
}
