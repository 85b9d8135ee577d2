package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glavchev79/xExpEff/config"
)

const (
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
)

// theme is the palette of one colour scheme.
type theme struct {
	name       string
	background string // the colour probability intensities blend into
	text       string
	selectedBG string
	selectedFG string
	border     string
	title      string
}

var (
	darkTheme = theme{
		name:       config.ThemeDark,
		background: "#1e1e1e",
		text:       "#c0c0c0",
		selectedBG: rowSelectedBGColor,
		selectedFG: "#e0e0e0",
		border:     "240",
		title:      "#4ecdc4",
	}
	lightTheme = theme{
		name:       config.ThemeLight,
		background: "#f8f9fa",
		text:       "#212529",
		selectedBG: "#dee2e6",
		selectedFG: "#000000",
		border:     "250",
		title:      "#0d6efd",
	}
)

func themeByName(name string) theme {
	if name == config.ThemeLight {
		return lightTheme
	}
	return darkTheme
}

func (t theme) toggled() theme {
	if t.name == config.ThemeLight {
		return darkTheme
	}
	return lightTheme
}

var (
	appstyle    = lipgloss.NewStyle().Margin(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true).Padding(1, 2)

	dateDrawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))

	cursorMarker  = "▐"
	defaultMarker = " "
)

func (t theme) tableStyle() lipgloss.Style {
	return lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(t.border))
}

func (t theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.title))
}

func (t theme) rowTextStyle(selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.selectedFG)).
			Background(lipgloss.Color(t.selectedBG))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.text))
}
