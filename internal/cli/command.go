package cli

import (
	"fmt"
	"strings"
)

// CommandType enumerates the REPL commands.
type CommandType int

const (
	CmdRead CommandType = iota
	CmdWrite
	CmdDelete
	CmdList
	CmdShare
	CmdHelp
	CmdQuit
)

// Command is a parsed REPL line: a command and its arguments.
type Command struct {
	Type CommandType
	Args []string
}

// commandSpec maps command words to their type and expected argument
// count. Argument-count mismatches are rejected here, before any
// command reaches the record store.
var commandSpec = map[string]struct {
	typ  CommandType
	args int
}{
	"read":   {CmdRead, 1},
	"write":  {CmdWrite, 2},
	"delete": {CmdDelete, 1},
	"list":   {CmdList, 0},
	"share":  {CmdShare, 2},
	"help":   {CmdHelp, 0},
	"quit":   {CmdQuit, 0},
}

// ParseCommand parses one REPL line. Arguments may be double-quoted to
// contain spaces; backslash escapes a quote inside a quoted argument.
func ParseCommand(line string) (Command, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(tokens) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	spec, ok := commandSpec[tokens[0]]
	if !ok {
		return Command{}, fmt.Errorf("invalid command %q", tokens[0])
	}

	args := tokens[1:]
	if len(args) > spec.args {
		return Command{}, fmt.Errorf("too many arguments for command %q", tokens[0])
	}
	if len(args) < spec.args {
		return Command{}, fmt.Errorf("too few arguments for command %q", tokens[0])
	}

	return Command{Type: spec.typ, Args: args}, nil
}

func tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder

	inQuotes := false
	escaped := false
	inToken := false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			inToken = true
		case (r == ' ' || r == '\t') && !inQuotes:
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
