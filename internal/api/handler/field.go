package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/fielding"
	"github.com/uniquebrothers/sales-entry-api/pkg/apiErrors"
)

type ReorderFieldsRequest struct {
	Index     int                  `json:"index"`
	Direction domain.MoveDirection `json:"direction"`
}

func ListFields(service fielding.FieldService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := service.ListFields()
		if err != nil {
			logrus.WithError(err).Error("failed to list fields")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list fields", nil)
			return
		}

		writeList(w, fields, len(fields))
	}
}

func CreateField(service fielding.FieldService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		field, err := service.CreateField(&req)
		if err != nil {
			handleFieldError(w, err)
			return
		}

		writeData(w, http.StatusCreated, field)
	}
}

func UpdateField(service fielding.FieldService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if fieldID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Field ID is required", nil)
			return
		}

		var req domain.UpdateFieldRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		req.ID = fieldID

		field, migrated, err := service.UpdateField(&req)
		if err != nil {
			handleFieldError(w, err)
			return
		}

		message := ""
		if migrated > 0 {
			message = fmt.Sprintf("field updated, %d entries migrated to the new name", migrated)
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: field})
	}
}

func DeleteField(service fielding.FieldService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if fieldID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Field ID is required", nil)
			return
		}

		if err := service.DeleteField(fieldID); err != nil {
			handleFieldError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "field deleted"})
	}
}

func ReorderFields(service fielding.FieldService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReorderFieldsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if req.Direction != domain.MoveUp && req.Direction != domain.MoveDown {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Direction must be up or down", nil)
			return
		}

		if err := service.MoveField(req.Index, req.Direction); err != nil {
			handleFieldError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "fields reordered"})
	}
}

func handleFieldError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fielding.ErrFieldNotFound):
		apiErrors.WriteError(w, apiErrors.ErrFieldNotFound, err.Error(), nil)

	case errors.Is(err, fielding.ErrMissingFieldName),
		errors.Is(err, fielding.ErrMissingOptions):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, fielding.ErrInvalidFieldType),
		errors.Is(err, fielding.ErrDuplicateFieldName),
		errors.Is(err, fielding.ErrInvalidPosition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.WithError(err).Error("field operation failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Field operation failed", nil)
	}
}
