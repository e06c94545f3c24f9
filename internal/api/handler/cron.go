package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/internal/scheduler"
	"github.com/uniquebrothers/sales-entry-api/pkg/apiErrors"
)

const (
	CronJobTypeDailySummary = "daily-summary"
	CronJobTypeAll          = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	DailySummarySyncService *scheduler.DailySummarySyncService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailySummary, CronJobTypeAll:
			if services.DailySummarySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Daily summary sync service unavailable", nil)
				return
			}
			services.DailySummarySyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: daily-summary, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron job triggered manually")

		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "cron job started",
			Data:    map[string]string{"type": cronType},
		})
	}
}

// GetCronStatus reports the current state of every scheduler.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"daily-summary": services.DailySummarySyncService.GetStatus(),
		}

		writeData(w, http.StatusOK, status)
	}
}
