package main

import "github.com/glavchev79/xExpEff/session"

type mode int

const (
	modeView mode = iota
	modeCommand
	modeDateDrawer
	modeDialog
)

type uiState struct {
	mode         mode
	command      CommandInput
	noticeMsg    string
	noticeType   session.Level
	noticeSeq    int
	searchQuery  string
	dateDrawer   dateDrawerUI
	visibleStart int
	visibleEnd   int
}
