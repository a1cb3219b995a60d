package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-board-api/internal/domain"
	resp "go-board-api/internal/transport/http/response"
)

// writeError 业务错误 → 统一响应码；未知错误一律 500，不泄露内部细节
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusOK, resp.Error(resp.CodeConflict, "username already taken"))
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid credentials"))
	case errors.Is(err, domain.ErrTokenExpired):
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "token expired"))
	case errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
	case errors.Is(err, domain.ErrBoardNotFound):
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "board not found"))
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "storage unavailable"))
	default:
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "internal error"))
	}
}
