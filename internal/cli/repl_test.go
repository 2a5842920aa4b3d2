package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoval-dev/lockbox/internal/common"
)

// execStub records dispatched commands and returns canned errors.
type execStub struct {
	calls []string
	err   error
}

func (s *execStub) Read(ctx context.Context, name string) error {
	s.calls = append(s.calls, "read "+name)
	return s.err
}

func (s *execStub) Write(ctx context.Context, name, content string) error {
	s.calls = append(s.calls, "write "+name+" "+content)
	return s.err
}

func (s *execStub) Delete(ctx context.Context, name string) error {
	s.calls = append(s.calls, "delete "+name)
	return s.err
}

func (s *execStub) List(ctx context.Context) error {
	s.calls = append(s.calls, "list")
	return s.err
}

func (s *execStub) Share(ctx context.Context, name, user string) error {
	s.calls = append(s.calls, "share "+name+" "+user)
	return s.err
}

func runLines(t *testing.T, stub *execStub, lines ...string) []string {
	t.Helper()

	var printed []string
	oldPrintln := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			printed = append(printed, v.(string))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = oldPrintln })

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	runREPL(context.Background(), stub, in, &bytes.Buffer{})
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &execStub{}
	runLines(t, stub, `read note`, `write "my note" "some content"`, `delete note`, `list`, `quit`)

	assert.Equal(t, []string{
		"read note",
		"write my note some content",
		"delete note",
		"list",
	}, stub.calls)
}

func TestRunREPL_RejectsBadArgCounts(t *testing.T) {
	stub := &execStub{}
	printed := runLines(t, stub, "read", "write onlyname", "read a b", "quit")

	assert.Empty(t, stub.calls) // nothing reached the core
	assert.Len(t, printed, 4)   // three errors plus "Bye!"
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	stub := &execStub{}
	printed := runLines(t, stub, "frobnicate", "quit")

	assert.Empty(t, stub.calls)
	assert.Contains(t, printed[0], "invalid command")
}

func TestRunREPL_ReportsConditionNotDiagnostics(t *testing.T) {
	stub := &execStub{err: common.ErrRecordNotFound}
	printed := runLines(t, stub, "read missing", "quit")

	assert.Contains(t, printed[0], "Record not found")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub := &execStub{}
	in := strings.NewReader("list\n") // no quit; EOF ends the loop
	runREPL(context.Background(), stub, in, &bytes.Buffer{})
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestFailureMessage_NamesConditions(t *testing.T) {
	cases := map[error]string{
		common.ErrSessionLocked:  "locked",
		common.ErrRecordNotFound: "not found",
		common.ErrRecordExists:   "already exists",
		common.ErrKeyUnwrap:      "key",
		common.ErrDecrypt:        "content",
		common.ErrConsistency:    "consistency",
		common.ErrNotImplemented: "not implemented",
		common.ErrStorage:        "Storage",
	}
	for err, want := range cases {
		assert.Contains(t, strings.ToLower(failureMessage(err)), strings.ToLower(want))
	}
}
