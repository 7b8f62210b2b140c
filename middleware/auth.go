package middleware

import (
	"net/http"
	"strings"

	userRepo "fixmarkt/database/repository/user"
	workshopRepo "fixmarkt/database/repository/workshop"
	"fixmarkt/models"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxPrincipalID = "principalID"
	CtxRole        = "role"
)

// JWTAuthMiddleware validates the bearer token and resolves the authenticated
// principal. The redis auth cache is consulted first; on a miss the token hash
// is checked against the stored account record.
func JWTAuthMiddleware(users userRepo.UserRepository, workshops workshopRepo.WorkshopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		tokenHash := utils.HashToken(tokenString)

		if session, err := utils.GetAuthSession(utils.GetAuthCacheClient(), tokenHash); err == nil {
			c.Set(CtxPrincipalID, session.PrincipalID)
			c.Set(CtxRole, session.Role)
			c.Next()
			return
		}

		// Cache miss: the stored token hash is the source of truth, so a
		// revoked token fails here even while the JWT is still unexpired.
		switch role {
		case models.RoleWorkshop:
			w, err := workshops.GetByTokenHash(tokenHash)
			if err != nil || w.ID != subject {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or workshop not found"})
				return
			}
		default:
			u, err := users.GetByTokenHash(tokenHash)
			if err != nil || u.ID != subject {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
				return
			}
		}

		c.Set(CtxPrincipalID, subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// Principal returns the authenticated principal ID and role from the context.
func Principal(c *gin.Context) (id, role string) {
	id = c.GetString(CtxPrincipalID)
	role = c.GetString(CtxRole)
	return id, role
}
