package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlaglessArgs(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"positional only": {
			args: []string{"alice", "pw"},
			want: []string{"alice", "pw"},
		},
		"separate flag values": {
			args: []string{"-c", "conf.json", "alice", "-d", "sqlite", "pw"},
			want: []string{"alice", "pw"},
		},
		"combined flag values": {
			args: []string{"-c=conf.json", "alice", "-s=lockbox.db", "pw"},
			want: []string{"alice", "pw"},
		},
		"unknown flag kept": {
			args: []string{"-x=1", "alice", "pw"},
			want: []string{"-x=1", "alice", "pw"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, flaglessArgs(tc.args))
		})
	}
}
