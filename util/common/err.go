package common

import (
	"errors"
	"fmt"

	"lostfound/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	var sum string
	for _, err := range errs {
		if err == nil {
			continue
		}
		if sum != "" {
			sum += ", "
		}
		sum += err.Error()
	}
	if sum == "" {
		return nil
	}
	return errors.New(sum)
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
