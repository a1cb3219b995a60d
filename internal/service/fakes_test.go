package service

// in-memory fakes standing in for the gorm repos; same contracts,
// uniqueness and affected-row semantics included

import (
	"go-board-api/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error // 注入存储故障
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeBoardRepo struct {
	boards []domain.Board // 保持插入顺序
	err    error
}

func newFakeBoardRepo() *fakeBoardRepo { return &fakeBoardRepo{} }

func (f *fakeBoardRepo) Create(b *domain.Board) error {
	if f.err != nil {
		return f.err
	}
	f.boards = append(f.boards, *b)
	return nil
}

func (f *fakeBoardRepo) FindByID(id string) (*domain.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.boards {
		if f.boards[i].ID == id {
			cp := f.boards[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBoardRepo) ListByOwner(ownerID string) ([]domain.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Board, 0)
	for _, b := range f.boards {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBoardRepo) DeleteByIDAndOwner(id, ownerID string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.boards {
		if f.boards[i].ID == id && f.boards[i].OwnerID == ownerID {
			f.boards = append(f.boards[:i], f.boards[i+1:]...)
			return nil
		}
	}
	return domain.ErrBoardNotFound
}

func (f *fakeBoardRepo) UpdateStatus(b *domain.Board, status domain.BoardStatus) error {
	if f.err != nil {
		return f.err
	}
	b.Status = status
	for i := range f.boards {
		if f.boards[i].ID == b.ID {
			f.boards[i].Status = status
			return nil
		}
	}
	return domain.ErrBoardNotFound
}
