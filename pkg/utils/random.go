package utils

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const letterChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomNumbers 生成指定长度的纯数字随机串（短信验证码用）
func RandomNumbers(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, _ := rand.Int(rand.Reader, big.NewInt(10))
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String()
}

// RandomString 生成指定长度的随机字母数字串
func RandomString(length int) string {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letterChars))))
		sb.WriteByte(letterChars[n.Int64()])
	}
	return sb.String()
}

// RandomInt 返回 [min, max) 区间内的随机整数
func RandomInt(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return min + int(n.Int64())
}

// SimpleUUID 生成不带连字符的 UUID（32 位十六进制，会话 Token 用）
func SimpleUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
