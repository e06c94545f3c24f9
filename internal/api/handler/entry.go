package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/recording"
	"github.com/uniquebrothers/sales-entry-api/pkg/apiErrors"
	"github.com/uniquebrothers/sales-entry-api/pkg/middleware"
	"github.com/uniquebrothers/sales-entry-api/pkg/utils"
)

type RenameKeyRequest struct {
	OldKey string `json:"old_key"`
	NewKey string `json:"new_key"`
}

func CreateEntry(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		var req domain.CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		entry, err := service.CreateEntry(claims, &req)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		writeData(w, http.StatusCreated, entry)
	}
}

// ListEntries returns entries filtered by the optional start_date and
// end_date query parameters (YYYY-MM-DD, both inclusive).
func ListEntries(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
			return
		}

		filter, err := parseEntryFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entries, err := service.ListEntries(claims, filter)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		writeList(w, entries, len(entries))
	}
}

func UpdateEntry(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Entry ID is required", nil)
			return
		}

		var req domain.UpdateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		req.ID = entryID

		entry, err := service.UpdateEntry(&req)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		writeData(w, http.StatusOK, entry)
	}
}

func DeleteEntry(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Entry ID is required", nil)
			return
		}

		if err := service.DeleteEntry(entryID); err != nil {
			handleEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "entry deleted"})
	}
}

// RenameKey is the administrative entry point for migrating an attribute key
// across all entries without touching the field definitions.
func RenameKey(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RenameKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		migrated, err := service.RenameKey(req.OldKey, req.NewKey)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: fmt.Sprintf("%d entries migrated from %q to %q", migrated, req.OldKey, req.NewKey),
		})
	}
}

func GetStats(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.Stats()
		if err != nil {
			handleEntryError(w, err)
			return
		}

		writeData(w, http.StatusOK, stats)
	}
}

// ExportDataset hands the export client everything it needs in one response:
// the field definitions for the header row plus every entry.
func ExportDataset(service recording.RecordService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset, err := service.ExportDataset()
		if err != nil {
			handleEntryError(w, err)
			return
		}

		count := len(dataset.Entries)
		writeJSON(w, http.StatusOK, Response{Success: true, Count: &count, Data: dataset})
	}
}

func parseEntryFilter(r *http.Request) (domain.EntryFilter, error) {
	filter := domain.EntryFilter{}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return filter, fmt.Errorf("invalid start_date: %w", err)
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return filter, fmt.Errorf("invalid end_date: %w", err)
	}

	filter.StartDate = startDate
	filter.EndDate = endDate
	return filter, nil
}

func handleEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recording.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEntryNotFound, err.Error(), nil)

	case errors.Is(err, recording.ErrValidation):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, recording.ErrForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	default:
		logrus.WithError(err).Error("entry operation failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Entry operation failed", nil)
	}
}
