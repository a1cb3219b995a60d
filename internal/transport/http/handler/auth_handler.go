package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-board-api/internal/service"
	resp "go-board-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type credentialsIn struct {
	Username string `json:"username" binding:"required,min=4,max=20,alphanum"`
	Password string `json:"password" binding:"required,min=4,max=20"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	if err := h.svc.SignUp(in.Username, in.Password); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"username": in.Username}))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	token, err := h.svc.SignIn(in.Username, in.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"accessToken": token}))
}
