package utils

import (
	"math/rand"
)

const codeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode 从字母+数字中不重复抽取 n 个字符，用作邮箱验证码
func RandomCode(n int) string {
	if n > len(codeChars) {
		n = len(codeChars)
	}
	perm := rand.Perm(len(codeChars))
	code := make([]byte, n)
	for i := 0; i < n; i++ {
		code[i] = codeChars[perm[i]]
	}
	return string(code)
}
