package application

import (
	"encoding/json"
	"errors"
	"fmt"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
)

// toError keeps coded errors as they are and marks any other error as internal.
func toError(err error) arkerrors.Error {
	var coded arkerrors.Error
	if errors.As(err, &coded) {
		return coded
	}
	return arkerrors.INTERNAL_ERROR.Wrap(err)
}

// decodeBatch decodes a JSON array, reporting malformed JSON as a value error.
func decodeBatch[T any](payload []byte, kind string) ([]T, arkerrors.Error) {
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		var coded arkerrors.Error
		if errors.As(err, &coded) {
			return nil, coded
		}
		return nil, arkerrors.VALUE_ERROR.Wrap(fmt.Errorf("invalid %s payload: %w", kind, err)).
			WithMetadata(arkerrors.ValueMetadata{Input: truncate(string(payload))})
	}
	return items, nil
}

func truncate(s string) string {
	const maxLen = 64
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
