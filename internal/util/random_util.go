package util

import (
	"math/rand"
	"strings"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString 產生長度為n的隨機字串
func RandomString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphanumeric[rand.Intn(len(alphanumeric))])
	}
	return sb.String()
}

// RandomInt 產生[min, max]之間的隨機整數
func RandomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
