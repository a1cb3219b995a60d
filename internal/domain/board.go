package domain

import "time"

type BoardStatus string

const (
	BoardStatusPublic  BoardStatus = "PUBLIC"
	BoardStatusPrivate BoardStatus = "PRIVATE"
)

// ValidBoardStatus 状态枚举校验，PUBLIC/PRIVATE 之外一律拒绝
func ValidBoardStatus(s BoardStatus) bool {
	return s == BoardStatusPublic || s == BoardStatusPrivate
}

type Board struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Status      BoardStatus `gorm:"size:16;not null;default:PUBLIC" json:"status"`
	OwnerID     string      `gorm:"index;size:36;not null" json:"ownerId"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Board) TableName() string { return "boards" }

type BoardRepository interface {
	Create(b *Board) error
	// FindByID 不带 owner 过滤，归属校验在 service 层
	FindByID(id string) (*Board, error)
	// ListByOwner 按创建顺序返回，无记录时返回空切片
	ListByOwner(ownerID string) ([]Board, error)
	// DeleteByIDAndOwner 影响行数为 0 时返回 ErrBoardNotFound
	DeleteByIDAndOwner(id, ownerID string) error
	UpdateStatus(b *Board, status BoardStatus) error
}
