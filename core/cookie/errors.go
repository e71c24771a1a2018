package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrNoSecret         = errors.New("cookie: no signing secret")
	ErrSecretTooShort   = errors.New("cookie: signing secret shorter than 32 chars")
	ErrCookieNotFound   = errors.New("cookie: not present")
	ErrInvalidFormat    = errors.New("cookie: malformed signed value")
	ErrInvalidSignature = errors.New("cookie: bad signature")
)

// ErrCookieTooLarge is returned by Set when the serialized cookie exceeds
// the manager's size limit.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie: %q is %d bytes, limit %d", e.Name, e.Size, e.Max)
}
