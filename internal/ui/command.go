package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandKind identifies an interactive command.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdAuthor
	CmdTag
	CmdHome
	CmdReload
	CmdHelp
	CmdQuit
)

// Command is one parsed line of user input.
type Command struct {
	Kind  CommandKind
	Index int    // 1-based card number for CmdAuthor
	Tag   string // tag for CmdTag
}

var errUsage = errors.New("unknown command, type ? for help")

// ParseCommand parses a line typed at the gallery prompt.
// A blank line parses to CmdNone.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "a", "author":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: a <card number>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("invalid card number %q", args[0])
		}
		return Command{Kind: CmdAuthor, Index: n}, nil
	case "t", "tag":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: t <tag>")
		}
		return Command{Kind: CmdTag, Tag: args[0]}, nil
	case "h", "home":
		return Command{Kind: CmdHome}, nil
	case "r", "reload":
		return Command{Kind: CmdReload}, nil
	case "?", "help":
		return Command{Kind: CmdHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	default:
		return Command{}, errUsage
	}
}
