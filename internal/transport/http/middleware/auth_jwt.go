package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-board-api/internal/domain"
	"go-board-api/internal/service"
	resp "go-board-api/internal/transport/http/response"
)

const (
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// AuthBearer 解析 Bearer token 并回查用户，把已解析身份放进上下文。
// token 里的 claim 不直接当事实来源：用户已被删除时这里就会 401。
func AuthBearer(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		u, err := authSvc.ResolveToken(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, domain.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, msg))
			return
		}
		c.Set(KeyUserID, u.ID)
		c.Set(KeyUsername, u.Username)
		c.Next()
	}
}
