package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
	}{
		{"localhost", "localhost:8080", "localhost", 8080},
		{"ip", "127.0.0.1:9090", "127.0.0.1", 9090},
		{"empty host", ":8000", "", 8000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a NetAddress
			require.NoError(t, a.Set(tc.input))
			assert.Equal(t, tc.wantHost, a.Host)
			assert.Equal(t, tc.wantPort, a.Port)
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no colon", "localhost8080"},
		{"port not a number", "localhost:abc"},
		{"port out of range", "localhost:70000"},
		{"bad host", "not-an-ip:8080"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tc.input))
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	a := NetAddress{Host: "localhost", Port: 8080}
	assert.Equal(t, "localhost:8080", a.String())

	var zero NetAddress
	assert.Equal(t, "", zero.String(), "zero value must merge away")
}
