package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hiromasa-dev/mathfeed/internal/constants"
	"github.com/hiromasa-dev/mathfeed/internal/database"
	"github.com/hiromasa-dev/mathfeed/internal/models"
)

// RequireUserParam resolves the named path parameter to a user record and
// stores it in the context, answering 404 for unknown usernames.
func RequireUserParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param(param)
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Username is required",
			})
			c.Abort()
			return
		}

		var user models.User
		err := database.GetDB().Where("username = ?", username).First(&user).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProfileUser, user)
		c.Next()
	}
}

// GetParamUser retrieves the user resolved by RequireUserParam.
func GetParamUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyProfileUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
