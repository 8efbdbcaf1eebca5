package apperr

import "fmt"

// ValidationError は1つの属性の検証失敗。errors.Is(err, ErrMalformedEvent)が真になる。
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrMalformedEvent, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrMalformedEvent }

// DirectoryError はバックエンド（valkey / rest）の呼び出し失敗。
// 原因に関わらずErrDirectoryUnavailableとして扱う。
type DirectoryError struct {
	Backend   string
	Operation string
	Cause     error
}

func NewDirectoryError(backend, operation string, cause error) *DirectoryError {
	return &DirectoryError{Backend: backend, Operation: operation, Cause: cause}
}

func (e *DirectoryError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrDirectoryUnavailable, e.Backend, e.Operation)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DirectoryError) Unwrap() error { return e.Cause }

func (e *DirectoryError) Is(target error) bool { return target == ErrDirectoryUnavailable }

// ValkeyError は失敗したValkeyコマンドとキー。
type ValkeyError struct {
	Operation string
	Key       string
	Cause     error
}

func NewValkeyError(operation, key string, cause error) *ValkeyError {
	return &ValkeyError{Operation: operation, Key: key, Cause: cause}
}

func (e *ValkeyError) Error() string {
	msg := fmt.Sprintf("valkey %s %s", e.Operation, e.Key)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValkeyError) Unwrap() error { return e.Cause }
