package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind классифицирует ошибку обращения к API.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindNetworkFailure
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNetworkFailure:
		return "network failure"
	default:
		return "unexpected"
	}
}

// Error: ошибка клиента API. Status и Body заполнены, если сервер ответил.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Body    []byte
	Err     error
}

var (
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrNetworkFailure = &Error{Kind: KindNetworkFailure}
	ErrUnexpected     = &Error{Kind: KindUnexpected}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("team api: %d %s: %s: %v", e.Status, http.StatusText(e.Status), msg, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("team api: %d %s: %s", e.Status, http.StatusText(e.Status), msg)
	case e.Err != nil:
		return fmt.Sprintf("team api: %s: %v", msg, e.Err)
	default:
		return "team api: " + msg
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает ошибки по Kind, чтобы работало errors.Is(err, client.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf возвращает Kind ошибки клиента; прочие ошибки считаются неожиданными.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
