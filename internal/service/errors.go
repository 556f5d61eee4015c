package service

import "strings"

// ValidationError 输入校验错误：携带逐条校验信息，响应时合并为单条消息。
// 在任何写入发生之前同步检出并返回。
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// newValidationError 构造校验错误
func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
