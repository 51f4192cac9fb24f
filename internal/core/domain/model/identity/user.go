package identity

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

const maxUsernameLength = 150

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a registered account. Credentials live with the identity
// provider; only the stable subject and the username are kept here.
type User struct {
	id       kernel.UUID
	subject  string
	username string

	isConstructed bool
}

func NewUser(id kernel.UUID, subject, username string) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(u.setID(id), u.setSubject(subject), u.setUsername(username)); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user from storage without re-running validation.
func RestoreUser(id kernel.UUID, subject, username string) *User {
	return &User{id: id, subject: subject, username: username, isConstructed: true}
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID  { return u.id }
func (u *User) Subject() string  { return u.subject }
func (u *User) Username() string { return u.username }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	u.subject = subject
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > maxUsernameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"username", fmt.Errorf("%d characters exceeds %d", n, maxUsernameLength),
		)
	}
	u.username = username
	return nil
}
