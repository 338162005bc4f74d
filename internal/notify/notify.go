// Package notify delivers best-effort desktop notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a single notification. Blocking, best-effort.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the OS notification service,
// falling back to the console when delivery fails.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		Console{}.Notify(title, message)
	}
	return nil
}

// Console prints notifications to stdout.
type Console struct{}

func (Console) Notify(title, message string) error {
	fmt.Printf("NOTIFICATION: %s - %s\n", title, message)
	return nil
}

// ForBackend returns the notifier named by backend; unknown names get the
// console notifier.
func ForBackend(backend string) Notifier {
	if backend == "desktop" {
		return Desktop{}
	}
	return Console{}
}
