package kitchenerror

import (
	"fmt"

	"github.com/pkg/errors"
)

const InvalidStateCode = "InvalidState"

// ErrInvalidState matches every error carrying InvalidStateCode when used with errors.Is.
var ErrInvalidState = New(InvalidStateCode, "operation called before its precondition was met")

type KitchenError interface {
	error
	GetErrorCode() string
	Unwrap() error
}

type kitchenError struct {
	error
	errorCode string
}

func (kErr *kitchenError) Error() string {
	return fmt.Sprintf("%s - %s", kErr.errorCode, kErr.error.Error())
}

func (kErr *kitchenError) Unwrap() error {
	return kErr.error
}

func (kErr *kitchenError) GetErrorCode() string {
	return kErr.errorCode
}

// Is reports whether target carries the same error code.
func (kErr *kitchenError) Is(target error) bool {
	var coded *kitchenError
	if !errors.As(target, &coded) {
		return false
	}

	return coded.errorCode == kErr.errorCode
}

func New(errorCode string, message string) error {
	return &kitchenError{errorCode: errorCode, error: errors.New(message)}
}

func Errorf(errorCode string, format string, a ...any) error {
	return &kitchenError{errorCode: errorCode, error: errors.Errorf(format, a...)}
}

func InvalidState(format string, a ...any) error {
	return Errorf(InvalidStateCode, format, a...)
}

func IsInvalidState(err error) bool {
	return HasErrorCode(err, InvalidStateCode)
}

func HasErrorCode(err error, errorCode string) bool {
	var coded KitchenError
	if !errors.As(err, &coded) {
		return false
	}

	return coded.GetErrorCode() == errorCode
}
