package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// numericEntry only accepts ASCII digits, typed or pasted.
type numericEntry struct {
	widget.Entry
}

func newNumericEntry() *numericEntry {
	entry := &numericEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

func (entry *numericEntry) TypedRune(r rune) {
	if !isDigit(r) {
		return
	}
	entry.Entry.TypedRune(r)
}

func (entry *numericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if paste, ok := shortcut.(*fyne.ShortcutPaste); ok && paste.Clipboard != nil {
		if !allDigits(paste.Clipboard.Content()) {
			return
		}
	}
	entry.Entry.TypedShortcut(shortcut)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func allDigits(value string) bool {
	for _, r := range value {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
