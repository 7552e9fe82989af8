package errors

import (
	stdErr "errors"
	"fmt"
	"runtime"
)

// RuntimeFileInfo makes Wrap record the wrapping call site in the message.
var RuntimeFileInfo = false

func As(err error, target any) bool {
	return stdErr.As(err, target)
}

func Is(err, target error) bool {
	return stdErr.Is(err, target)
}

func New(text string) error {
	return stdErr.New(text)
}

func Newf(text string, args ...any) error {
	return fmt.Errorf(text, args...)
}

func Wrap(err error, msg string, args ...any) error {
	if err == nil {
		return err
	}
	if RuntimeFileInfo {
		pc, file, line, ok := runtime.Caller(1)
		if ok {
			msg += " function=%s file=%s line=%d"
			rf := runtime.FuncForPC(pc)
			args = append(args, rf.Name(), file, line)
		}
	}

	msg += ": %w"
	args = append(args, err)

	return fmt.Errorf(msg, args...)
}
