package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// RecurringScheduler periodically records due recurring expenses
type RecurringScheduler struct {
	recurringService *RecurringService
	logger           zerolog.Logger
	schedule         string
	location         *time.Location
	runOnStart       bool
	now              func() time.Time

	cron    *cron.Cron
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	runMu   sync.Mutex
	mu      sync.Mutex
	running bool
}

// RecurringSchedulerConfig holds configuration for the recurring scheduler
type RecurringSchedulerConfig struct {
	Schedule   string         // standard 5-field cron expression
	Location   *time.Location // calendar used to decide "today"
	RunOnStart bool           // catch up immediately on start
}

// DefaultRecurringSchedulerConfig runs shortly after midnight UTC
func DefaultRecurringSchedulerConfig() RecurringSchedulerConfig {
	return RecurringSchedulerConfig{
		Schedule:   "5 0 * * *",
		Location:   time.UTC,
		RunOnStart: true,
	}
}

// NewRecurringScheduler creates a new scheduler. The schedule is parsed up front.
func NewRecurringScheduler(
	recurringService *RecurringService,
	logger zerolog.Logger,
	config RecurringSchedulerConfig,
) (*RecurringScheduler, error) {
	if config.Schedule == "" {
		config.Schedule = DefaultRecurringSchedulerConfig().Schedule
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	if _, err := cron.ParseStandard(config.Schedule); err != nil {
		return nil, fmt.Errorf("invalid recurring schedule %q: %w", config.Schedule, err)
	}

	return &RecurringScheduler{
		recurringService: recurringService,
		logger:           logger.With().Str("component", "recurring_scheduler").Logger(),
		schedule:         config.Schedule,
		location:         config.Location,
		runOnStart:       config.RunOnStart,
		now:              time.Now,
	}, nil
}

// Start registers the cron job and begins scheduling
func (s *RecurringScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New(cron.WithLocation(s.location))
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("register recurring job: %w", err)
	}

	s.logger.Info().
		Str("schedule", s.schedule).
		Str("location", s.location.String()).
		Msg("Starting recurring scheduler")

	c.Start()
	s.cron = c
	s.cancel = cancel
	s.running = true

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.RunOnce(runCtx)
		}()
	}
	return nil
}

// Stop cancels in-flight runs and waits for them to finish
func (s *RecurringScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	c, cancel := s.cron, s.cancel
	s.mu.Unlock()

	s.logger.Info().Msg("Stopping recurring scheduler")
	cancel()
	<-c.Stop().Done()
	s.wg.Wait()
	s.logger.Info().Msg("Recurring scheduler stopped")
}

// RunOnce advances every recurring expense due on or before today in the
// scheduler's location. Overlapping runs are serialized.
func (s *RecurringScheduler) RunOnce(ctx context.Context) *AdvanceResult {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	today := domain.DateOf(s.now().In(s.location))
	startTime := time.Now()

	result, err := s.recurringService.AdvanceDue(ctx, today)
	if err != nil {
		s.logger.Error().Err(err).Str("today", today.String()).Msg("Recurring advancement failed")
		return result
	}

	s.logger.Info().
		Str("today", today.String()).
		Int("due", result.Due).
		Int("advanced", result.Advanced).
		Int("skipped", result.Skipped).
		Int("occurrences", result.Occurrences).
		Int("errors", result.Errors).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed recurring advancement")
	return result
}

// IsRunning returns whether the scheduler is currently running
func (s *RecurringScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
