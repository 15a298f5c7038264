package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the requester is not allowed to do the action
	ErrForbidden = errors.New("you are not allowed to do this action")
	// ErrNestingTooDeep will throw if a reply would exceed the configured nesting level
	ErrNestingTooDeep = errors.New("reply nesting level exceeds the limit")
	// ErrUnavailable will throw if the storage layer is temporarily unreachable
	ErrUnavailable = errors.New("storage is temporarily unavailable")
)
