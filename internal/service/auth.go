package service

import (
	"go-board-api/internal/core/auth"
	"go-board-api/internal/domain"
	"go-board-api/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// SignUp 哈希后落库；用户名冲突由存储层唯一索引报出并原样上抛
func (s *AuthService) SignUp(username, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.Create(&domain.User{
		ID:           utils.NewID(),
		Username:     username,
		PasswordHash: hash,
	})
}

// SignIn 用户不存在和密码错误统一返回 ErrInvalidCredentials，
// 密码比对是同步 bool，拿到结果后才决定是否发 token
func (s *AuthService) SignIn(username, password string) (string, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return s.jwter.Issue(u.Username)
}

// ResolveToken 校验 token 后回查用户；用户已不存在则视为非法令牌，
// 不把 claim 当作当前事实来源
func (s *AuthService) ResolveToken(tokenStr string) (*domain.User, error) {
	claims, err := s.jwter.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByUsername(claims.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrTokenInvalid
	}
	return u, nil
}
