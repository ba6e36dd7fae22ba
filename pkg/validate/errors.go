package validate

import "fmt"

// FieldError 字段级校验错误，返回给调用方，不作为系统错误记录
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

func NewFieldError(field, code, message string) *FieldError {
	return &FieldError{Field: field, Code: code, Message: message}
}

// QuotaError 配额超限，附带当前值与上限
type QuotaError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Current int64  `json:"current"`
	Max     int64  `json:"max"`
}

func (e *QuotaError) Error() string {
	return e.Message
}

func (e *QuotaError) Code() string {
	return "quota_exceeded"
}

func NewQuotaError(field string, current, max int64) *QuotaError {
	return &QuotaError{
		Field:   field,
		Message: fmt.Sprintf("quota exceeded: %d of %d allowed", current, max),
		Current: current,
		Max:     max,
	}
}
