package asset

import (
	"errors"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
)

// reason returns the message of err without the code prefix of a coded error.
func reason(err error) string {
	var coded arkerrors.Error
	if errors.As(err, &coded) {
		if cause := errors.Unwrap(coded); cause != nil {
			return cause.Error()
		}
	}
	return err.Error()
}

func parseErr(input, grammar, msg string, args ...any) error {
	return arkerrors.PARSE_ERROR.New(msg, args...).WithMetadata(arkerrors.ParseMetadata{
		Input:   input,
		Grammar: grammar,
	})
}

func valueErr(input, msg string, args ...any) error {
	return arkerrors.VALUE_ERROR.New(msg, args...).
		WithMetadata(arkerrors.ValueMetadata{Input: input})
}

func unsupportedErr(operation, msg string, args ...any) error {
	return arkerrors.UNSUPPORTED_OPERATION.New(msg, args...).
		WithMetadata(arkerrors.UnsupportedOperationMetadata{Operation: operation})
}
