package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adarsht2308/dellcube-lms-sub000/models"
)

var secret = []byte("supersecret") // fallback

// SetJWTSecret installs the configured signing key. Called once at startup,
// after the environment has been loaded; an empty value keeps the fallback.
func SetJWTSecret(s string) {
	if s != "" {
		secret = []byte(s)
	}
}

// GenerateToken issues a signed token carrying the user's identity and role.
func GenerateToken(user *models.AppUser) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	if user.DriverID != nil {
		claims["driver_id"] = *user.DriverID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

type ctxKey string

const actorKey ctxKey = "actor"

// ActorFrom returns the authenticated actor stored by RequireAuth.
func ActorFrom(r *http.Request) models.Actor {
	actor, _ := r.Context().Value(actorKey).(models.Actor)
	return actor
}

// RequireAuth validates the bearer token, builds the explicit actor context
// and optionally restricts the endpoint to the given roles.
func RequireAuth(next http.HandlerFunc, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Missing or invalid Authorization header",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid or expired token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid token claims",
			})
			return
		}

		actor := models.Actor{}
		if v, ok := claims["user_id"].(float64); ok {
			actor.UserID = int64(v)
		}
		if v, ok := claims["role"].(string); ok {
			actor.Role = models.Role(v)
		}
		if v, ok := claims["driver_id"].(float64); ok {
			actor.DriverID = int64(v)
		}
		if !actor.Role.IsValid() {
			writeJSON(w, http.StatusUnauthorized, ApiResponse{
				Success: false,
				Message: "Invalid token claims",
			})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if actor.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				writeJSON(w, http.StatusForbidden, ApiResponse{
					Success: false,
					Message: "Insufficient role for this operation",
				})
				return
			}
		}

		next(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	}
}
