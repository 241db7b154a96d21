package middleware

import (
	"context"
	"net/http"
	"strings"

	"brightnest/models"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const actorContextKey = "actor"

// JWTAuthMiddleware validates the bearer token, checks it against the auth
// cache (so revoked tokens die immediately), and stores the actor identity
// in the request context.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		actor, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		cachedHash, err := authCache.Get(context.Background(), utils.AuthCachePrefix+actor.UserID).Result()
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// AdminOnlyMiddleware rejects any actor without the admin role. It must run
// after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil || actor.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetActor returns the authenticated actor from the gin context, or nil.
func GetActor(c *gin.Context) *models.ActorIdentity {
	val, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	actor, ok := val.(*models.ActorIdentity)
	if !ok {
		return nil
	}
	return actor
}
