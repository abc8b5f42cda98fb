package errors

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code is the type representing a namespace error code.
type Code[MT any] struct {
	Code     uint16
	Name     string
	GrpcCode grpccodes.Code
}

// New creates a new error with the given code and the message
func (c Code[MT]) New(msg string, args ...any) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: fmt.Errorf(msg, args...),
	}
}

// Wrap creates a new Error with the given code and the cause error
func (c Code[MT]) Wrap(cause error) TypedError[MT] {
	return &ErrorImpl[MT]{
		code:  c,
		cause: cause,
	}
}

// Is reports whether any error in err's chain carries this code.
func (c Code[MT]) Is(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(Error); ok && e.Code() == c.Code {
			return true
		}
	}
	return false
}

func (c Code[MT]) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.Code)
}

type Error interface {
	error
	Log() *log.Entry
	Code() uint16
	CodeName() string
	GrpcCode() grpccodes.Code
	Metadata() map[string]string
}

type TypedError[MT any] interface {
	Error
	WithMetadata(MT) TypedError[MT]
}

// ErrorImpl is the default concrete implementation of TypedError.
type ErrorImpl[MT any] struct {
	code     Code[MT]
	cause    error
	metadata MT
}

func (e *ErrorImpl[MT]) Log() *log.Entry {
	return log.WithField("name", e.code.Name).
		WithField("code", e.code.Code).
		WithField("metadata", e.metadata)
}

func (e *ErrorImpl[MT]) Metadata() map[string]string {
	// convert any metadata to map[string]string
	metadata := make(map[string]string)
	buf, err := json.Marshal(e.metadata)
	if err == nil {
		var genericMap map[string]any
		if err := json.Unmarshal(buf, &genericMap); err == nil {
			for k, v := range genericMap {
				vStr := ""
				if v != nil {
					vStr = fmt.Sprintf("%v", v)
				}
				metadata[k] = vStr
			}
		}
	}
	return metadata
}

func (e *ErrorImpl[MT]) GrpcCode() grpccodes.Code {
	return e.code.GrpcCode
}

// GRPCStatus lets status.Convert map the error to its grpc code.
func (e *ErrorImpl[MT]) GRPCStatus() *status.Status {
	return status.New(e.code.GrpcCode, e.Error())
}

func (e *ErrorImpl[MT]) Code() uint16 {
	return e.code.Code
}

func (e *ErrorImpl[MT]) CodeName() string {
	return e.code.Name
}

// Error() implements the error interface.
func (e *ErrorImpl[MT]) Error() string {
	return fmt.Sprintf("%s: %s", e.code.String(), e.cause.Error())
}

func (e *ErrorImpl[MT]) Unwrap() error {
	return e.cause
}

func (e *ErrorImpl[MT]) WithMetadata(metadata MT) TypedError[MT] {
	e.metadata = metadata
	return e
}

type ParseMetadata struct {
	Input   string `json:"input"`
	Grammar string `json:"grammar"`
}

type ValueMetadata struct {
	Input string `json:"input"`
}

type UnsupportedOperationMetadata struct {
	Operation string `json:"operation"`
}

type NotFoundMetadata struct {
	Id string `json:"id"`
}

var INTERNAL_ERROR = Code[map[string]any]{0, "INTERNAL_ERROR", grpccodes.Internal}

// PARSE_ERROR reports a malformed identifier or path string.
var PARSE_ERROR = Code[ParseMetadata]{1, "PARSE_ERROR", grpccodes.InvalidArgument}

// VALUE_ERROR reports a value outside the representable range or of an unrecognized shape.
var VALUE_ERROR = Code[ValueMetadata]{2, "VALUE_ERROR", grpccodes.InvalidArgument}

// UNSUPPORTED_OPERATION marks operations that exist but are not implemented yet.
var UNSUPPORTED_OPERATION = Code[UnsupportedOperationMetadata]{
	3,
	"UNSUPPORTED_OPERATION",
	grpccodes.Unimplemented,
}

var NOT_FOUND = Code[NotFoundMetadata]{4, "NOT_FOUND", grpccodes.NotFound}
