package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/session"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	m.ui.mode = modeCommand
}

func (m *model) runCommand() tea.Cmd {
	c := m.ui.command
	switch c.cmd {
	case CmdJump:
		n, err := strconv.Atoi(strings.TrimSpace(c.buf))
		if err != nil {
			return m.startNotice("Invalid row number", session.LevelWarn, noticeDuration)
		}
		return m.jumpToLine(n)

	case CmdSearch:
		return m.searchOnce(c.buf)
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil

	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView("command", false)
		return m, cmd

	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
