package core

// submission_limiter.go bounds how many onboarding submissions stream files
// to disk at the same time. Submissions beyond the limit queue for up to
// maxWait before failing with ErrTooManySubmissions. WaitForDrain lets
// shutdown wait for in-flight submissions.

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrTooManySubmissions is returned when no slot frees up within the wait time.
var ErrTooManySubmissions = errors.New("too many submissions in progress, please try again later")

const (
	DefaultMaxConcurrentSubmissions = 10
	DefaultMaxSubmissionWait        = 30 * time.Second
)

// SubmissionLimiter is a counting semaphore with a bounded wait.
type SubmissionLimiter struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
}

// NewSubmissionLimiter allows at most maxConcurrent submissions at once.
// Non-positive arguments fall back to the defaults.
func NewSubmissionLimiter(maxConcurrent int, maxWait time.Duration) *SubmissionLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentSubmissions
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxSubmissionWait
	}

	return &SubmissionLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting up to maxWait. Callers must Release on success.
func (l *SubmissionLimiter) Acquire(ctx context.Context) error {
	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.active.Add(1)
		return nil
	case <-timer.C:
		return ErrTooManySubmissions
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot taken by Acquire.
func (l *SubmissionLimiter) Release() {
	l.active.Add(-1)
	<-l.slots
}

// ActiveCount returns the number of submissions holding a slot.
func (l *SubmissionLimiter) ActiveCount() int {
	return int(l.active.Load())
}

// WaitForDrain blocks until no submission holds a slot or ctx is done.
func (l *SubmissionLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.ActiveCount() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SubmissionLimiterStatus is a point-in-time view of the limiter.
type SubmissionLimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state.
func (l *SubmissionLimiter) Status() SubmissionLimiterStatus {
	return SubmissionLimiterStatus{
		Active:        l.ActiveCount(),
		Available:     cap(l.slots) - len(l.slots),
		MaxConcurrent: cap(l.slots),
	}
}
