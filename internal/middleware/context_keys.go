package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID for a request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check the request context as well
		if v := c.Request.Context().Value(userIDKey); v != nil {
			userID, ok := v.(string)
			return userID, ok
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
