package middleware

import (
	"Marketplace/internal/pkg/consts"
	"Marketplace/internal/pkg/logger"
	"Marketplace/internal/pkg/redis"
	"Marketplace/internal/pkg/response"
	"Marketplace/internal/pkg/security"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
)

const bearerPrefix = "Bearer "

var (
	errTokenMissing = errors.New("Token 缺失或格式错误")
	errTokenInvalid = errors.New("Token 无效或已过期")
)

// AuthMiddleware 校验 JWT 并把 user_id、roles 注入 gin.Context 与 request context
func AuthMiddleware(validator *security.TokenValidator, rdb *redisv9.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c.Request.Context(), c.GetHeader("Authorization"), validator, rdb)
		if err != nil {
			switch {
			case errors.Is(err, errTokenMissing), errors.Is(err, errTokenInvalid):
				response.Fail(c, response.Unauthorized, err.Error())
			default:
				log.ErrorContext(c, "check revoked token error", "err", err)
				response.Fail(c, response.InternalServerError, "未知错误")
			}
			c.Abort()
			return
		}

		c.Set(logger.UserIDKey, claims.UserID)
		c.Set(consts.RolesKey, claims.Roles)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID))

		c.Next()
	}
}

func authenticate(ctx context.Context, header string, validator *security.TokenValidator, rdb *redisv9.Client) (*security.UserClaims, error) {
	tokenString, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || tokenString == "" {
		return nil, errTokenMissing
	}

	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return nil, errTokenMissing
	}

	// 注销的 Token 以签名为 key 记录在 redis
	if rdb != nil {
		value, err := redis.GetValue(ctx, rdb, consts.RevokedTokenKey+signature)
		if err != nil {
			return nil, err
		}
		if value != "" {
			return nil, errTokenInvalid
		}
	}

	claims, err := validator.ValidateToken(tokenString)
	if err != nil {
		return nil, errTokenInvalid
	}
	return claims, nil
}
