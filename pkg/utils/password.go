package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 自带随机盐，哈希结果不可逆
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword 同步返回 bool，内部为常数时间比较
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
