package domain

import "errors"

// 业务错误统一在这里定义，repo/service 原样向上传递，由 transport 层映射为响应码
var (
	// ErrUsernameTaken 用户名唯一约束冲突（由存储层唯一索引触发，不做先查后插）
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials 用户不存在 / 密码错误统一返回，避免用户名枚举
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid 签名校验失败或格式非法
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired 已过期，需重新登录
	ErrTokenExpired = errors.New("token expired")

	// ErrBoardNotFound 不存在或不属于当前用户（对调用方不区分）
	ErrBoardNotFound = errors.New("board not found")

	// ErrStorageUnavailable 基础设施故障，不在核心内重试
	ErrStorageUnavailable = errors.New("storage unavailable")
)
