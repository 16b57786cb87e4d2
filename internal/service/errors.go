package service

import (
	"errors"
	"net/http"
	"sort"
)

var (
	ErrParamInvalid       = errors.New("Invalid parameters.")
	ErrUserNotFound       = errors.New("User not found.")
	ErrPostNotFound       = errors.New("Post not found.")
	ErrCommentNotFound    = errors.New("Comment not found.")
	ErrSettingNotFound    = errors.New("Setting not found.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrUnauthenticated    = errors.New("Authentication credentials were not provided.")
	ErrTokenInvalid       = errors.New("Invalid token.")
	ErrForbidden          = errors.New("You do not have permission to perform this action.")
	UnExpectedError       = errors.New("A server error occurred.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrPostNotFound:       http.StatusNotFound,
	ErrCommentNotFound:    http.StatusNotFound,
	ErrSettingNotFound:    http.StatusNotFound,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrUnauthenticated:    http.StatusUnauthorized,
	ErrTokenInvalid:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	UnExpectedError:       http.StatusInternalServerError,
}

// 字段校验提示
const (
	MsgFieldRequired = "This field is required."
	MsgFieldBlank    = "This field may not be blank."
	MsgUsernameTaken = "user with this username already exists."
	MsgEmailTaken    = "user with this email already exists."
)

// ValidationError 字段级校验错误
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	return (&ValidationError{}).Add(field, message)
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// OrNil 没有字段错误时返回 nil
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msg := "validation failed:"
	for _, f := range fields {
		msg += " " + f
	}
	return msg
}
