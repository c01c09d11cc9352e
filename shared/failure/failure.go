package failure

import (
	"errors"
	"net/http"

	"github.com/lib/pq"

	"tourism/shared/constant"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Constraints maps a database constraint name to the client message used when it is violated.
type Constraints map[string]string

// FromDatabase turns postgres constraint violations into client-facing failures.
// Unique violations become 409, foreign key, check and not-null violations become 400.
// Any other error is returned unchanged.
func FromDatabase(err error, constraints Constraints) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	msg, known := constraints[pqErr.Constraint]

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		if !known {
			msg = "record already exists"
		}

		return Conflict(msg)
	case constant.PqErrorCodeFkViolation:
		if !known {
			msg = "referenced record does not exist"
		}

		return BadRequestFromString(msg)
	case constant.PqErrorCodeCheckViolation, constant.PqErrorCodeNotNullViolation:
		if !known {
			msg = "invalid value for " + pqErr.Column
		}

		return BadRequestFromString(msg)
	}

	return err
}

// IsPqCode reports whether err wraps a postgres error with the given SQLSTATE.
func IsPqCode(err error, code string) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
