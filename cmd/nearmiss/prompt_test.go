package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptIntValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(int) error
		want     int
		rejected int // error lines printed before acceptance
	}{
		{"FirstTry", "3\n", validatePower, 3, 0},
		{"UpperEdge", "11\n", validatePower, 11, 0},
		{"RejectsBelowRange", "2\n3\n", validatePower, 3, 1},
		{"RejectsAboveRange", "12\n11\n", validatePower, 11, 1},
		{"RejectsGarbage", "abc\n2.5\n7\n", validatePower, 7, 2},
		{"LimitRejectsTen", "10\n11\n", validateLimit, 11, 1},
		{"WhitespaceTolerant", "  42  \n", validateLimit, 42, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptInt(bufio.NewReader(strings.NewReader(tt.input)), &out, "? ", tt.validate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rejected, strings.Count(out.String(), "Error:"))
		})
	}
}

func TestPromptIntExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	_, err := promptInt(bufio.NewReader(strings.NewReader("2\n")), &out, "? ", validatePower)
	require.Error(t, err, "input ending on an invalid value must fail, not loop")
}

func TestValidatePower(t *testing.T) {
	assert.Error(t, validatePower(2))
	assert.NoError(t, validatePower(3))
	assert.NoError(t, validatePower(11))
	assert.Error(t, validatePower(12))
}

func TestValidateLimit(t *testing.T) {
	assert.Error(t, validateLimit(10))
	assert.NoError(t, validateLimit(11))
}
