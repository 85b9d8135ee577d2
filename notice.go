package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/logging"
	"github.com/glavchev79/xExpEff/session"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func noticeText(msg string, kind session.Level) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case session.LevelInfo:
		icon = "ℹ"
	case session.LevelSuccess:
		icon = "✓"
	case session.LevelWarn:
		icon = "!"
	case session.LevelError:
		icon = "×"
	default:
		icon = ""
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (m *model) startNotice(msg string, level session.Level, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = level

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.id != m.ui.noticeSeq {
		return
	}
	m.ui.noticeMsg = ""
	m.ui.noticeType = ""
}

type pendingNotice struct {
	level session.Level
	msg   string
}

// noticeQueue collects session notifications raised during one update so
// they can be turned into a single timed footer notice afterwards.
type noticeQueue struct {
	pending []pendingNotice
}

func (q *noticeQueue) Notify(level session.Level, msg string) {
	logging.Infof("notice[%s]: %s", level, msg)
	q.pending = append(q.pending, pendingNotice{level: level, msg: msg})
}

func (q *noticeQueue) drain() []pendingNotice {
	out := q.pending
	q.pending = nil
	return out
}

// flushNotices shows the most recent queued notification.
func (m *model) flushNotices() tea.Cmd {
	queued := m.notices.drain()
	if len(queued) == 0 {
		return nil
	}
	last := queued[len(queued)-1]
	return m.startNotice(last.msg, last.level, noticeDuration)
}
