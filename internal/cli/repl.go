package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mkoval-dev/lockbox/internal/common"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can
// provide a lightweight stub.
type execIface interface {
	Read(ctx context.Context, name string) error
	Write(ctx context.Context, name, content string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) error
	Share(ctx context.Context, name, user string) error
}

const helpText = `Available commands:
  read <name>             print a record
  write <name> <content>  create or update a record
  delete <name>           delete a record
  list                    list record names
  share <name> <user>     share a record (not implemented)
  help                    show this text
  quit                    leave the program`

// runREPL reads lines from in, parses each as a command, and
// dispatches to a. Parse failures and command failures are reported to
// the user by condition; raw storage diagnostics never reach the
// console. The loop exits on EOF or the quit command.
func runREPL(ctx context.Context, a execIface, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "lockbox> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			printlnFn(err.Error())
			continue
		}

		switch cmd.Type {
		case CmdHelp:
			printlnFn(helpText)

		case CmdQuit:
			printlnFn("Bye!")
			return

		case CmdRead:
			if err := a.Read(ctx, cmd.Args[0]); err != nil {
				printlnFn(failureMessage(err))
			}

		case CmdWrite:
			if err := a.Write(ctx, cmd.Args[0], cmd.Args[1]); err != nil {
				printlnFn(failureMessage(err))
			}

		case CmdDelete:
			if err := a.Delete(ctx, cmd.Args[0]); err != nil {
				printlnFn(failureMessage(err))
			}

		case CmdList:
			if err := a.List(ctx); err != nil {
				printlnFn(failureMessage(err))
			}

		case CmdShare:
			if err := a.Share(ctx, cmd.Args[0], cmd.Args[1]); err != nil {
				printlnFn(failureMessage(err))
			}
		}
	}
}

func isRecordExists(err error) bool {
	return errors.Is(err, common.ErrRecordExists)
}

// failureMessage names the failed condition for the user without
// exposing internal diagnostics.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrSessionLocked):
		return "Session is locked; restart and log in again."
	case errors.Is(err, common.ErrRecordNotFound):
		return "Record not found."
	case errors.Is(err, common.ErrRecordExists):
		return "Record already exists."
	case errors.Is(err, common.ErrKeyUnwrap):
		return "Record key is corrupted or tampered with."
	case errors.Is(err, common.ErrDecrypt):
		return "Record content is corrupted or tampered with."
	case errors.Is(err, common.ErrConsistency):
		return "Store consistency violation detected; session disabled."
	case errors.Is(err, common.ErrNotImplemented):
		return "Sharing is not implemented."
	case errors.Is(err, common.ErrStorage):
		return "Storage error."
	default:
		return "Unexpected error."
	}
}
