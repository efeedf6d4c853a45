package middleware

import (
	"bookshelf-graphql/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const ClientIPKey = "client_ip"

// ClientIP resolves the caller address behind proxies and adds it to the
// request-scoped logger. Register it after RequestID.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)
		c.Set(ClientIPKey, clientIP)

		ctx := c.Request.Context()
		logger := zerolog.Ctx(ctx).With().
			Str(ClientIPKey, clientIP).
			Bool("private_ip", utils.IsPrivateIP(clientIP)).
			Logger()
		c.Request = c.Request.WithContext(logger.WithContext(ctx))

		c.Next()
	}
}
