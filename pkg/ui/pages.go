package ui

import "github.com/rivo/tview"

// PageLogID identifies the log page.
const PageLogID = "log_page"

type ActionPrompt struct {
	Input  string
	Action string
}

// Page is the interface that all UI pages must implement.
type Page interface {
	tview.Primitive
	GetActionPrompts() []ActionPrompt
}
