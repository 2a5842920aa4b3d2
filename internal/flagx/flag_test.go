package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-s", "lockbox.db", "-x", "other"}, []string{"-s"})
	assert.Equal(t, []string{"-s", "lockbox.db"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--store=lockbox.db", "--other=1"}, []string{"--store"})
	assert.Equal(t, []string{"--store=lockbox.db"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-v", "-s", "x"}, []string{"-v", "-s"})
	assert.Equal(t, []string{"-v", "-s", "x"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "1", "-b"}, nil)
	assert.Empty(t, got)
}
