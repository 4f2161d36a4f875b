// Package notify shows short modal messages to the person at the screen.
package notify

import (
	"github.com/ncruces/zenity"
	"github.com/richinsley/goattractor/logging"
)

// Notifier displays a blocking, user-visible error message.
type Notifier interface {
	Error(title, message string)
}

// Dialog shows native modal dialogs.
type Dialog struct{}

func (Dialog) Error(title, message string) {
	logging.Logger().Error(message, "title", title)
	if err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon); err != nil {
		logging.Logger().Warn("could not show dialog", "error", err)
	}
}
