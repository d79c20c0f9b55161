package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"spacehub/internal/repository"
)

// Pending bookings whose start passed this long ago without confirmation
// get cancelled by the sweep.
const pendingGrace = 24 * time.Hour

// BookingSweeper runs the hourly lifecycle sweeps: confirmed bookings whose
// interval elapsed become completed, stale pending bookings get cancelled.
type BookingSweeper struct {
	bookings *repository.BookingRepository
	log      *logrus.Logger
	runner   *cron.Cron
}

func NewBookingSweeper(bookings *repository.BookingRepository, log *logrus.Logger) *BookingSweeper {
	return &BookingSweeper{
		bookings: bookings,
		log:      log,
		runner:   cron.New(),
	}
}

func (s *BookingSweeper) Start() error {
	if _, err := s.runner.AddFunc("@hourly", s.sweep); err != nil {
		return err
	}
	s.runner.Start()
	s.log.Info("booking sweeper started")
	return nil
}

func (s *BookingSweeper) Stop() {
	ctx := s.runner.Stop()
	<-ctx.Done()
}

func (s *BookingSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now().UTC()

	completed, err := s.bookings.SweepConfirmedPast(ctx, now)
	if err != nil {
		s.log.WithError(err).Error("sweep confirmed bookings")
	} else if completed > 0 {
		s.log.WithField("count", completed).Info("bookings completed by sweep")
	}

	cancelled, err := s.bookings.SweepStalePending(ctx, now.Add(-pendingGrace))
	if err != nil {
		s.log.WithError(err).Error("sweep pending bookings")
	} else if cancelled > 0 {
		s.log.WithField("count", cancelled).Info("stale pending bookings cancelled by sweep")
	}
}
