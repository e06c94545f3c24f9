package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/internal/config"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/pkg/utils"
)

// DailySummarySyncService snapshots the day's sales figures into the
// daily_summaries table on a cron schedule, so historical aggregates survive
// later edits to individual entries.
type DailySummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              config.SummarySync
	entryRepo           repository.SalesEntryRepository
	summaryRepo         repository.DailySummaryRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySummarySyncService(
	entryRepo repository.SalesEntryRepository,
	summaryRepo repository.DailySummaryRepository,
	appConfig *config.Config,
) *DailySummarySyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SummarySync.CronSchedule,
		"sync_enabled":  appConfig.SummarySync.Enabled,
	}).Info("Daily summary sync configuration loaded")

	return &DailySummarySyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      appConfig.SummarySync,
		entryRepo:   entryRepo,
		summaryRepo: summaryRepo,
		syncRunning: false,
	}
}

// Start schedules the sync job and stops the scheduler when ctx is cancelled.
func (s *DailySummarySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Daily summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting daily summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDailySummary()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule daily summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping daily summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailySummarySyncService) syncDailySummary() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Daily summary sync already running, skipping")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	day := utils.Today()

	logrus.WithField("date", day.Format(time.DateOnly)).Info("Starting daily summary sync")

	summary, err := s.buildSummary(day)
	if err != nil {
		logrus.WithError(err).Error("Failed to build daily summary")
		return
	}

	if err := s.summaryRepo.SaveOrUpdate(summary); err != nil {
		logrus.WithFields(logrus.Fields{
			"date":  day.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("Failed to save daily summary")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":          day.Format(time.DateOnly),
		"total_sales":   summary.TotalSales,
		"total_entries": summary.TotalEntries,
		"duration":      time.Since(startTime).String(),
	}).Info("Daily summary sync completed")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// buildSummary aggregates the given day's entries. Entries missing quantity
// or price count toward the entry total but are left out of the average.
func (s *DailySummarySyncService) buildSummary(day time.Time) (*domain.DailySummary, error) {
	entries, err := s.entryRepo.ListEntries(domain.EntryFilter{
		StartDate: &day,
		EndDate:   &day,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for %s: %w", day.Format(time.DateOnly), err)
	}

	var totalSales float64
	sellableEntries := 0
	for _, entry := range entries {
		entry.ComputeTotalAmount()
		if entry.TotalAmount != nil {
			totalSales += *entry.TotalAmount
			sellableEntries++
		}
	}

	avgSale := 0.0
	if sellableEntries > 0 {
		avgSale = totalSales / float64(sellableEntries)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary ID: %w", err)
	}

	return &domain.DailySummary{
		ID:           id,
		Date:         day,
		TotalSales:   utils.RoundWithTwoDecimalPlace(totalSales),
		TotalEntries: len(entries),
		AvgSale:      utils.RoundWithTwoDecimalPlace(avgSale),
	}, nil
}

// TriggerManualSync kicks off a sync outside the schedule.
func (s *DailySummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Daily summary sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual daily summary sync")
	go s.syncDailySummary()
}

// GetStatus reports the scheduler's current state.
func (s *DailySummarySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
