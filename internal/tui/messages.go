package tui

import "time"

type tickMsg time.Time

type linkDoneMsg struct {
	err error
}

type connectDoneMsg struct {
	err error
}

type syncDoneMsg struct {
	err error
}

type signOutDoneMsg struct {
	err error
}

type copiedMsg struct{}
