package session

import "time"

// Timer is the stoppable handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler schedules callbacks. The real implementation wraps
// time.AfterFunc; tests substitute a fake to fire deadlines by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
