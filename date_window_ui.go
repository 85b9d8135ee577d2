package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/glavchev79/xExpEff/dataset"
)

const (
	dateDrawerContentHeight = 3
	dateDrawerHeight        = dateDrawerContentHeight + 2
)

type dateDrawerUI struct {
	open     bool
	input    textinput.Model
	errorMsg string
	draft    time.Time
}

func initDateInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = dataset.DateLayout
	ti.CharLimit = len(dataset.DateLayout)
	ti.Width = len(dataset.DateLayout) + 1
	ti.Prompt = ""
	return ti
}
