// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// IdentityKey is the gin context key the verified identity is stored under.
const IdentityKey = "identity"

// authCacheTTL bounds how long a verified token is trusted without
// re-verification.
const authCacheTTL = time.Hour

// AuthMiddleware validates the bearer credential on each request and stores
// the verified identity on the context. Verification results are cached in
// Redis under a hash of the token; a missing or failing cache degrades to
// direct verification.
func AuthMiddleware(verifier utils.IdentityVerifier, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		ctx := c.Request.Context()
		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)

		if authCache != nil {
			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
				if uid, email, ok := splitCachedIdentity(cached); ok {
					_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
					c.Set(IdentityKey, utils.Identity{UID: uid, Email: email})
					c.Next()
					return
				}
			}
		}

		identity, err := verifier.Verify(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, identity.UID+"|"+identity.Email, authCacheTTL).Err()
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CallerIdentity retrieves the verified identity set by AuthMiddleware.
func CallerIdentity(c *gin.Context) (utils.Identity, bool) {
	val, ok := c.Get(IdentityKey)
	if !ok {
		return utils.Identity{}, false
	}
	identity, ok := val.(utils.Identity)
	return identity, ok
}

func splitCachedIdentity(cached string) (uid, email string, ok bool) {
	parts := strings.SplitN(cached, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
