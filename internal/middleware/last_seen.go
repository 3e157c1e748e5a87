package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
)

// TouchLastSeen records activity for the authenticated user on every request.
// Runs after RequireAuth; requests without a user ID pass through untouched.
func TouchLastSeen(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			// Best effort; a failed touch must not fail the request.
			_ = userRepo.UpdateLastSeen(userID, time.Now())
		}
		c.Next()
	}
}
