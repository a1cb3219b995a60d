package repo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-board-api/internal/domain"
)

type BoardRepo struct{ db *gorm.DB }

func NewBoardRepo(db *gorm.DB) *BoardRepo { return &BoardRepo{db: db} }

func (r *BoardRepo) Create(b *domain.Board) error {
	if err := r.db.Create(b).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *BoardRepo) FindByID(id string) (*domain.Board, error) {
	var b domain.Board
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return &b, nil
}

func (r *BoardRepo) ListByOwner(ownerID string) ([]domain.Board, error) {
	boards := make([]domain.Board, 0)
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&boards).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return boards, nil
}

// DeleteByIDAndOwner 按 id+owner 删除；影响行数 0 统一报 NotFound，
// 不区分“不存在”和“不是本人的”，避免泄露他人资源是否存在
func (r *BoardRepo) DeleteByIDAndOwner(id, ownerID string) error {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Board{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (r *BoardRepo) UpdateStatus(b *domain.Board, status domain.BoardStatus) error {
	b.Status = status
	if err := r.db.Model(b).Update("status", status).Error; err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
