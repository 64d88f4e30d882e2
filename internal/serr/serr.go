package serr

import (
	"errors"
	"fmt"
)

type Code int

const (
	BadRequestCode       Code = 400
	AuthCode             Code = 401
	CsrfCode             Code = 403
	NotFoundCode         Code = 404
	InvalidOperationCode Code = 405
	ConflictCode         Code = 409
	ValidationCode       Code = 460
	InternalErrorCode    Code = 500
	PersistenceCode      Code = 512
)

var ErrStrMap = map[Code]string{
	BadRequestCode:       "bad request",
	AuthCode:             "unauthenticated",
	CsrfCode:             "csrf token mismatch",
	NotFoundCode:         "not found",
	InvalidOperationCode: "invalid operation",
	ConflictCode:         "conflict",
	ValidationCode:       "validation failed",
	InternalErrorCode:    "internal server error",
	PersistenceCode:      "persistence failed",
}

// AppError 服務層統一錯誤
// 預期的業務錯誤都用AppError回傳, 不panic
// Fields 儲存欄位層級的驗證錯誤 field -> message
type AppError struct {
	Code    Code
	Message string
	Fields  map[string]string
	cause   error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		for field, msg := range e.Fields {
			return fmt.Sprintf("%s: %s", field, msg)
		}
	}
	return ErrStrMap[e.Code]
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if errors.As(target, &appErr) {
		return e.Code == appErr.Code
	}
	return false
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewField 單一欄位錯誤
func NewField(code Code, field, message string) *AppError {
	return &AppError{Code: code, Fields: map[string]string{field: message}}
}

// NewFields 多欄位錯誤, 用於validator累積的結果
func NewFields(code Code, fields map[string]string) *AppError {
	return &AppError{Code: code, Fields: fields}
}

// Wrap 包裝底層錯誤, 保留原因供記錄
func Wrap(code Code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, cause: cause}
}

// CodeOf 取出錯誤代碼, 非AppError一律視為InternalErrorCode
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalErrorCode
}

// FieldsOf 取出欄位錯誤, 沒有則回傳nil
func FieldsOf(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
