package validator

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	maxPrice = decimal.RequireFromString("999999.99")
)

// 允許的圖片MIME類型
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Validator 欄位驗證器
// 錯誤採累積模式, 不會在第一個錯誤就中斷, 全部驗證完後由呼叫端一次取出
type Validator struct {
	errors map[string]string
}

func New() *Validator {
	return &Validator{errors: map[string]string{}}
}

func (v *Validator) ValidateEmail(email string) bool {
	if !emailPattern.MatchString(email) {
		v.errors["email"] = "Invalid email format"
		return false
	}
	return true
}

func (v *Validator) ValidateUsername(username string) bool {
	if len(username) < 3 {
		v.errors["username"] = "Username must be at least 3 characters"
		return false
	}
	if !usernamePattern.MatchString(username) {
		v.errors["username"] = "Username can only contain letters, numbers, dash and underscore"
		return false
	}
	return true
}

func (v *Validator) ValidatePassword(password string) bool {
	if len(password) < 6 {
		v.errors["password"] = "Password must be at least 6 characters"
		return false
	}
	return true
}

func (v *Validator) ValidatePrice(price decimal.Decimal) bool {
	if price.LessThanOrEqual(decimal.Zero) {
		v.errors["price"] = "Price must be greater than 0"
		return false
	}
	if price.GreaterThan(maxPrice) {
		v.errors["price"] = "Price is too high"
		return false
	}
	return true
}

func (v *Validator) ValidateTitle(title string) bool {
	if len(title) < 3 {
		v.errors["title"] = "Title must be at least 3 characters"
		return false
	}
	if len(title) > 255 {
		v.errors["title"] = "Title is too long"
		return false
	}
	return true
}

// ValidateFile 檢查上傳檔案大小與傳輸錯誤
// uploadErr為傳輸層錯誤(讀取multipart失敗等), 要跟大小超限分開呈現
func (v *Validator) ValidateFile(field string, size int64, maxSizeBytes int64, uploadErr error) bool {
	if uploadErr != nil {
		v.errors[field] = "File upload failed: " + uploadErr.Error()
		return false
	}
	if size > maxSizeBytes {
		v.errors[field] = "File is too large"
		return false
	}
	return true
}

func (v *Validator) ValidateImage(size int64, maxSizeBytes int64, contentType string, uploadErr error) bool {
	if !v.ValidateFile("image", size, maxSizeBytes, uploadErr) {
		return false
	}
	if !allowedImageTypes[contentType] {
		v.errors["image"] = "Invalid image type. Only JPEG, PNG, GIF, and WebP allowed"
		return false
	}
	return true
}

func (v *Validator) Errors() map[string]string {
	return v.errors
}

func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *Validator) AddError(field, message string) {
	v.errors[field] = message
}

func (v *Validator) ClearErrors() {
	v.errors = map[string]string{}
}
