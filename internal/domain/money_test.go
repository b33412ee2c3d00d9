package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"0", 0},
		{"100", 10000},
		{"123.45", 12345},
		{"0.1", 10},
		{"19.995", 2000},
		{"-0.005", -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMoney("12,50")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", Money(0).String())
	assert.Equal(t, "1.05", Money(105).String())
	assert.Equal(t, "-3.40", Money(-340).String())
	assert.Equal(t, Money(250000), MoneyFromMajor(2500))
}

func TestMoneyJSON(t *testing.T) {
	var v struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 450.5, "b": "12.34"}`), &v))
	assert.Equal(t, Money(45050), v.A)
	assert.Equal(t, Money(1234), v.B)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 450.50, "b": 12.34}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a": "abc"}`), &v))
}
