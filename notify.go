package skinvault

import "log"

// Notifier receives fire-and-forget user notifications. Implementations must
// not block; they are not part of any correctness contract.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("✅ %s", msg) }
func (LogNotifier) Info(msg string)    { log.Printf("📊 %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("❌ %s", msg) }

// Silent drops all notifications.
type Silent struct{}

func (Silent) Success(string) {}
func (Silent) Info(string)    {}
func (Silent) Error(string)   {}
