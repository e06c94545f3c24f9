package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"github.com/uniquebrothers/sales-entry-api/pkg/apiErrors"
)

// RoleMiddleware restricts access to callers whose role is in allowedRoles.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for user ID=%d, role=%s", userClaims.UserID, userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OwnerOnly permits access only to owners.
func OwnerOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleOwner})
}

// AllRoles permits access to every authenticated caller.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]string{domain.RoleOwner, domain.RoleEmployee})
}
