package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdDate // date drawer, never typed on the command line
)

type CommandInput struct {
	cmd Command
	buf string
}

func commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdJump:
		return "[JUMP]"
	default:
		return "[NORMAL]"
	}
}

func commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdJump:
		return "row: "
	default:
		return ""
	}
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	c := m.ui.command
	return commandBadge(c.cmd) + " " + commandPrompt(c.cmd) + c.buf
}
