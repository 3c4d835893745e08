package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiftwise/staff-scheduler/internal/middleware"
)

// identityFromContext pulls the authenticated staff/store IDs stashed by
// the auth middleware. A false return has already written the response.
func identityFromContext(c *gin.Context) (userID uint, storeID uint, ok bool) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return 0, 0, false
	}
	userID, okID := userIDVal.(uint)
	if !okID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return 0, 0, false
	}

	storeIDVal, _ := c.Get(middleware.ContextStoreID)
	storeID, _ = storeIDVal.(uint)

	return userID, storeID, true
}
