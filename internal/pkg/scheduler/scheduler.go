// Package scheduler wraps timer creation behind an interface so the session
// lifecycle can run against a manual clock in tests.
package scheduler

import "time"

// CancelFunc stops a pending callback. It reports whether the callback was
// still pending (false means it already fired or was cancelled before).
type CancelFunc func() bool

type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

type timeScheduler struct{}

// New returns a Scheduler backed by time.AfterFunc.
func New() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
