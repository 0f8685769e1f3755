// Package scheduler fires a task once per day at a fixed wall-clock time.
// Runs never overlap: a tick that arrives while the previous run is still in
// flight is dropped, not queued.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type Task func(ctx context.Context) error

type Scheduler struct {
	name       string
	hour, min  int
	runOnStart bool
	task       Task
	running    atomic.Bool
	now        func() time.Time // test seam
}

// New parses at as "HH:MM" local time.
func New(name, at string, runOnStart bool, task Task) (*Scheduler, error) {
	hour, min, err := parseAt(at)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		name:       name,
		hour:       hour,
		min:        min,
		runOnStart: runOnStart,
		task:       task,
		now:        time.Now,
	}, nil
}

func parseAt(at string) (hour, min int, err error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("schedule time %q is not HH:MM", at)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("schedule time %q has a bad hour", at)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("schedule time %q has a bad minute", at)
	}
	return hour, min, nil
}

// nextAfter returns the next occurrence of the scheduled wall-clock time
// strictly after now.
func nextAfter(now time.Time, hour, min int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is cancelled, firing the task at each scheduled tick.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.runOnStart {
		s.tryRun(ctx)
	}

	for {
		next := nextAfter(s.now(), s.hour, s.min)
		log.Printf("[%s] next run at %s", s.name, next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			s.tryRun(ctx)
		}
	}
}

// tryRun fires the task in the background unless the previous run is still
// going, in which case the tick is dropped.
func (s *Scheduler) tryRun(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		log.Printf("[%s] previous run still in progress; dropping tick", s.name)
		return
	}
	go func() {
		defer s.running.Store(false)
		if err := s.task(ctx); err != nil {
			log.Printf("[%s] error: %v", s.name, err)
		}
	}()
}
