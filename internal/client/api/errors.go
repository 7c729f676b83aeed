package api

import "errors"

// ErrorKind классифицирует ошибки, возвращаемые API клиентом
type ErrorKind int

const (
	// KindNetwork запрос не удалось выполнить (DNS, connect, timeout)
	KindNetwork ErrorKind = iota
	// KindServerRejection сервер ответил не-2xx со структурированным detail
	KindServerRejection
	// KindMalformedResponse тело ответа не JSON или неожиданной формы
	KindMalformedResponse
)

// Error is the tagged error type for all Account/Chart Service failures.
// Detail carries the server-provided message verbatim; Fallback is the
// operation's generic message used when the server payload has no detail.
type Error struct {
	Err        error
	Detail     string
	Fallback   string
	Kind       ErrorKind
	StatusCode int
}

// Error возвращает detail сервера дословно, либо generic fallback
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Fallback != "" {
		return e.Fallback
	}
	return "request failed"
}

// Unwrap возвращает исходную ошибку для errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает ErrorKind ошибки и признак того, что это *Error
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsUnauthorized сообщает, отверг ли сервер запрос со статусом 401
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
