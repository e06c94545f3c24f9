package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/authenticating"
	"github.com/uniquebrothers/sales-entry-api/pkg/apiErrors"
)

type CreateUserRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	ContactNumber *string `json:"contact_number"`
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			logrus.WithError(err).Error("failed to list users")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list users", nil)
			return
		}

		writeList(w, users, len(users))
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		user, err := service.CreateUser(&domain.User{
			Username:      req.Username,
			Email:         req.Email,
			PasswordHash:  req.Password,
			Role:          req.Role,
			ContactNumber: req.ContactNumber,
		})
		if err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			logrus.WithError(err).Error("failed to create user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to create user", nil)
			return
		}

		user.PasswordHash = ""
		writeData(w, http.StatusCreated, user)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid user ID", nil)
			return
		}

		user, err := service.GetUserProfile(userID)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "User not found", nil)
				return
			}

			logrus.WithError(err).Error("failed to load user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load user", nil)
			return
		}

		writeData(w, http.StatusOK, user)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid user ID", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		req.ID = userID

		if err := service.UpdateUser(&req); err != nil {
			logrus.WithError(err).Error("failed to update user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to update user", nil)
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "user updated"})
	}
}

func userIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}
