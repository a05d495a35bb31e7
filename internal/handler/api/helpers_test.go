//go:build unit

package api_test

import (
	"net/http"

	"villanest/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearerToken = "bearer-token"

// fakeAuth stands in for the auth middleware: any bearer header
// authenticates as the given identity.
func fakeAuth(userID *uuid.UUID, role *user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", *userID)
		c.Set("user_role", *role)
		c.Next()
	}
}

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}
