package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/clipboard"
	"github.com/glavchev79/xExpEff/config"
	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/dialogs"
	"github.com/glavchev79/xExpEff/logging"
	"github.com/glavchev79/xExpEff/session"
	"github.com/glavchev79/xExpEff/styles"
)

const (
	selectCountryID  = "country"
	selectDivisionID = "division"

	horizontalStep  = 4
	loadErrorNotice = 5 * time.Second
)

type model struct {
	session  *session.Session
	settings *config.Settings
	rules    styles.Rules
	theme    theme
	header   []ColumnMeta
	dates    dateBounds

	viewport   viewport.Model
	headerPort viewport.Model
	pager      paginator.Model
	ready      bool

	cursor int // index into the filtered view

	terminalWidth  int
	terminalHeight int

	ui           uiState
	notices      *noticeQueue
	activeDialog dialogs.Dialog

	InitialPath   string
	loadErr       error
	lastExportDir string

	copyText func(string) error
}

// NewModel builds the dashboard around ds. loadErr is the reason ds is
// empty, if loading failed; it is shown once the program starts.
func NewModel(ds *dataset.Dataset, settings *config.Settings, path string, loadErr error) *model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if ds == nil {
		ds = dataset.Empty()
	}

	q := &noticeQueue{}
	m := &model{
		session:     session.New(ds, session.WithNotifier(q)),
		settings:    settings,
		header:      newColumns(ds.Columns()),
		dates:       computeDateBounds(ds),
		viewport:    viewport.New(0, 0),
		headerPort:  viewport.New(0, headerHeight),
		pager:       paginator.New(),
		notices:     q,
		InitialPath: path,
		loadErr:     loadErr,
		copyText:    clipboard.Copy,
	}
	// the initial filter pass is not worth a notice
	q.drain()

	markEmptyColumns(m.header, ds.Records())
	m.setTheme(themeByName(settings.Theme))

	m.pager.Type = paginator.Arabic
	m.pager.PerPage = settings.PageSize
	m.ui.dateDrawer.input = initDateInput()
	if path != "" {
		m.lastExportDir = filepath.Dir(path)
	}
	m.refreshView("init", false)
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("dashboard: initialised with %d records", m.session.Dataset().Len())
	if m.loadErr != nil {
		return m.startNotice(fmt.Sprintf("Could not load data: %v", m.loadErr), session.LevelError, loadErrorNotice)
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.refreshView("resize", true)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case dialogs.SelectionConfirmedMsg:
		m.closeDialog()
		return m, m.applySelection(msg.ID, msg.Value)

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportTo(msg.Path)

	case dialogs.SelectionCanceledMsg, dialogs.ExportCanceledMsg, dialogs.HelpClosedMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// cursor blink and similar widget messages
	var cmd tea.Cmd
	switch {
	case m.activeDialog != nil:
		m.activeDialog, cmd = m.activeDialog.Update(msg)
	case m.ui.dateDrawer.open:
		m.ui.dateDrawer.input, cmd = m.ui.dateDrawer.input.Update(msg)
	}
	return m, cmd
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.ui.mode {
	case modeDialog:
		if m.activeDialog == nil {
			m.ui.mode = modeView
			return m, nil
		}
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeDateDrawer:
		return m.handleDateDrawerKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.SelectCountry):
		state := m.session.State()
		return m, m.openDialog(dialogs.NewSelectorDialog(selectCountryID, "Select Country", m.session.Countries(), state.Country))
	case key.Matches(msg, Keys.SelectDiv):
		state := m.session.State()
		return m, m.openDialog(dialogs.NewSelectorDialog(selectDivisionID, "Select Division", m.session.Divisions(), state.Division))
	case key.Matches(msg, Keys.PickDate):
		return m, m.openDateDrawer()
	case key.Matches(msg, Keys.ClearDate):
		m.session.ClearDate()
		m.cursor = 0
		cmd = m.flushNotices()
	case key.Matches(msg, Keys.ResetFilters):
		m.session.Reset()
		m.cursor = 0
		m.ui.searchQuery = ""
		cmd = m.flushNotices()
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.NextPage):
		m.nextPage()
	case key.Matches(msg, Keys.PrevPage):
		m.prevPage()
	case key.Matches(msg, Keys.FirstRow):
		m.jumpToStart()
	case key.Matches(msg, Keys.LastRow):
		m.jumpToEnd()
	case key.Matches(msg, Keys.ScrollLeft):
		m.viewport.ScrollLeft(horizontalStep)
		m.headerPort.ScrollLeft(horizontalStep)
	case key.Matches(msg, Keys.ScrollRight):
		m.viewport.ScrollRight(horizontalStep)
		m.headerPort.ScrollRight(horizontalStep)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
		return m, nil
	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)
		return m, nil
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName(m.InitialPath), m.lastExportDir))
	case key.Matches(msg, Keys.CopyLink):
		cmd = m.copySelectedLink()
	case key.Matches(msg, Keys.ToggleTheme):
		m.setTheme(m.theme.toggled())
		cmd = m.startNotice("Theme: "+m.theme.name, session.LevelInfo, noticeDuration)
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog("Keys", Keys.Legend()))
	case msg.Type == tea.KeyEsc:
		m.ui.searchQuery = ""
	default:
		return m, nil
	}

	m.refreshView("key", false)
	return m, cmd
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	m.ui.mode = modeDialog
	d.Show()
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
	m.refreshView("dialog-close", false)
}

// applySelection routes a selector result to the session setter it edits.
func (m *model) applySelection(id, value string) tea.Cmd {
	var err error
	switch id {
	case selectCountryID:
		err = m.session.SetCountry(value)
	case selectDivisionID:
		err = m.session.SetDivision(value)
	default:
		logging.Warnf("selection for unknown field %q", id)
		return nil
	}
	if err != nil {
		logging.Warnf("selection %s=%q rejected: %v", id, value, err)
		return m.startNotice(err.Error(), session.LevelWarn, noticeDuration)
	}
	m.cursor = 0
	m.refreshView("selection", false)
	return m.flushNotices()
}

func (m *model) setTheme(t theme) {
	m.theme = t
	m.settings.Theme = t.name
	m.rules = styles.Default(styles.Options{
		Threshold:  m.settings.ProbabilityThreshold,
		Background: t.background,
	})
}

func (m *model) selectedRecord() (dataset.Record, bool) {
	if !m.hasRows() {
		return dataset.Record{}, false
	}
	return m.session.At(m.cursor), true
}

func (m *model) copySelectedLink() tea.Cmd {
	r, ok := m.selectedRecord()
	if !ok || !r.HasLink() {
		return m.startNotice("No link for this match", session.LevelWarn, noticeDuration)
	}
	if err := m.copyText(r.MatchURL); err != nil {
		logging.Errorf("copy link: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), session.LevelError, noticeDuration)
	}
	return m.startNotice("Copied "+r.LinkLabel(), session.LevelSuccess, noticeDuration)
}

func (m *model) exportTo(path string) tea.Cmd {
	if err := ExportView(m.session, path); err != nil {
		logging.Errorf("export %s: %v", path, err)
		return m.startNotice("Export failed: "+err.Error(), session.LevelError, noticeDuration)
	}
	m.lastExportDir = filepath.Dir(path)
	return m.startNotice(fmt.Sprintf("Exported %d rows to %s", m.session.Len(), path), session.LevelSuccess, noticeDuration)
}

func defaultExportName(path string) string {
	if path == "" {
		return "predictions_view.csv"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_view.csv"
}
