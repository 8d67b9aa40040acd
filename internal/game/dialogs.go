package game

import "github.com/ncruces/zenity"

// Dialogs shows native modal dialogs. Calls block until dismissed and must
// not run on the game loop goroutine.
type Dialogs interface {
	Entry(title, prompt, initial string) (string, error)
	Info(title, message string) error
}

// ZenityDialogs implements Dialogs with the platform's native dialogs.
type ZenityDialogs struct{}

func (ZenityDialogs) Entry(title, prompt, initial string) (string, error) {
	return zenity.Entry(prompt, zenity.Title(title), zenity.EntryText(initial))
}

func (ZenityDialogs) Info(title, message string) error {
	return zenity.Info(message, zenity.Title(title), zenity.InfoIcon)
}
