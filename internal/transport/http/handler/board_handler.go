package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-board-api/internal/domain"
	"go-board-api/internal/service"
	mdw "go-board-api/internal/transport/http/middleware"
	resp "go-board-api/internal/transport/http/response"
)

type BoardHandler struct {
	svc *service.BoardService
}

func NewBoardHandler(svc *service.BoardService) *BoardHandler { return &BoardHandler{svc: svc} }

type createBoardIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type setStatusIn struct {
	Status domain.BoardStatus `json:"status" binding:"required"`
}

func (h *BoardHandler) Create(c *gin.Context) {
	var in createBoardIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	b, err := h.svc.Create(c.Request.Context(), service.CreateBoardInput{
		Title:       in.Title,
		Description: in.Description,
	}, c.GetString(mdw.KeyUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(b))
}

// ListMine 只返回自己的板，按创建顺序
func (h *BoardHandler) ListMine(c *gin.Context) {
	boards, err := h.svc.ListMine(c.Request.Context(), c.GetString(mdw.KeyUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(boards))
}

// Get 按 id 直查，不做归属过滤（与 list/delete 不对称，历史行为保留）
func (h *BoardHandler) Get(c *gin.Context) {
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(b))
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id, c.GetString(mdw.KeyUserID)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": id}))
}

func (h *BoardHandler) SetStatus(c *gin.Context) {
	var in setStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	if !domain.ValidBoardStatus(in.Status) {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "status must be PUBLIC or PRIVATE"))
		return
	}
	b, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), in.Status, c.GetString(mdw.KeyUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(b))
}
