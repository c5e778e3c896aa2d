package utils

import "regexp"

// 手机号校验：11 位，1 开头，第二位 3-9
var phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsPhoneInvalid 校验手机号格式是否非法
func IsPhoneInvalid(phone string) bool {
	return !phoneRegex.MatchString(phone)
}
