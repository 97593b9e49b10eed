// Package scheduler runs background jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Dispatcher fires the reminders that are due and reports how many it sent.
type Dispatcher interface {
	DispatchDue(ctx context.Context) (int, error)
}

// cronLogger routes cron's own logging into zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

type ReminderScheduler struct {
	cron       *cron.Cron
	dispatcher Dispatcher
	logger     *zap.Logger
	timeout    time.Duration
}

// NewReminderScheduler validates spec (standard cron or a descriptor such as
// "@every 30s") and registers the dispatch job. Runs never overlap.
func NewReminderScheduler(spec string, dispatcher Dispatcher, logger *zap.Logger) (*ReminderScheduler, error) {
	cl := cronLogger{logger: logger.Sugar()}
	s := &ReminderScheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		dispatcher: dispatcher,
		logger:     logger,
		timeout:    time.Minute,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("schedule reminders %q: %w", spec, err)
	}
	return s, nil
}

func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sent, err := s.dispatcher.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("reminder dispatch failed", zap.Error(err))
		return
	}
	if sent > 0 {
		s.logger.Info("reminders dispatched", zap.Int("count", sent))
	}
}

func (s *ReminderScheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running dispatch to finish or ctx to
// expire.
func (s *ReminderScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("reminder dispatch still running at shutdown")
	}
}
