package middleware

import (
	"context"
	"net/http"

	"interviewprep/internal/models"
	"interviewprep/internal/utils"
)

const currentUserKey contextKey = "current_user"

// UserLoader resolves a token subject to a live profile.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth verifies the bearer token and loads the caller's profile into
// the request context. A valid token whose user has since been deleted is
// still unauthorized.
func RequireAuth(secret string, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "invalid_credentials",
					Message: "Could not validate credentials",
				})
				return
			}

			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "invalid_credentials",
					Message: "Could not validate credentials",
				})
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "invalid_credentials",
					Message: "Could not validate credentials",
				})
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated caller set by RequireAuth, or nil on
// unguarded routes.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(currentUserKey).(*models.User)
	return user
}
