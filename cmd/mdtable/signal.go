package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context canceled on the first interruptSignals
// delivery. A second signal falls through to the default handler once stop
// has been called.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, interruptSignals...)
}
