package service

import (
	"context"
	"fmt"
	"time"

	"go-board-api/internal/core/cache"
	"go-board-api/internal/domain"
	"go-board-api/pkg/utils"
)

type CreateBoardInput struct {
	Title       string
	Description string
}

type BoardService struct {
	boards   domain.BoardRepository
	cache    *cache.Cache // 可为 nil，DB 永远是事实来源
	cacheTTL time.Duration
}

func NewBoardService(boards domain.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

// WithCache 开启单板读缓存（写路径主动失效，TTL 兜底）
func (s *BoardService) WithCache(c *cache.Cache, ttl time.Duration) *BoardService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func boardKey(id string) string { return fmt.Sprintf("board:%s", id) }

// GetByID 单条查询不做 owner 过滤：列表/删除按归属隔离，
// 按 id 直查对所有已登录用户开放
func (s *BoardService) GetByID(ctx context.Context, id string) (*domain.Board, error) {
	if s.cache == nil {
		return s.findByID(id)
	}
	b, err := cache.GetOrLoadJSON[domain.Board](s.cache, ctx, boardKey(id), s.cacheTTL, func(context.Context) (*domain.Board, error) {
		return s.findByID(id)
	})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBoardNotFound
	}
	return b, nil
}

func (s *BoardService) findByID(id string) (*domain.Board, error) {
	b, err := s.boards.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBoardNotFound
	}
	return b, nil
}

func (s *BoardService) ListMine(ctx context.Context, ownerID string) ([]domain.Board, error) {
	return s.boards.ListByOwner(ownerID)
}

func (s *BoardService) Create(ctx context.Context, in CreateBoardInput, ownerID string) (*domain.Board, error) {
	b := &domain.Board{
		ID:          utils.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.BoardStatusPublic,
		OwnerID:     ownerID,
	}
	if err := s.boards.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BoardService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.boards.DeleteByIDAndOwner(id, ownerID); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, boardKey(id))
	}
	return nil
}

// SetStatus 先取后改；归属门禁在这里，不下沉到 UpdateStatus
func (s *BoardService) SetStatus(ctx context.Context, id string, status domain.BoardStatus, ownerID string) (*domain.Board, error) {
	if !domain.ValidBoardStatus(status) {
		return nil, fmt.Errorf("invalid board status %q", status)
	}
	b, err := s.findByID(id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, domain.ErrBoardNotFound
	}
	if err := s.boards.UpdateStatus(b, status); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, boardKey(id))
	}
	return b, nil
}
