package commands

import (
	"errors"
	"strings"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrResolvePrincipalCommandIsNotConstructed = errors.New(
	"ResolvePrincipalCommand must be created via NewResolvePrincipalCommand constructor",
)

// ResolvePrincipalCommand turns verified credential claims into the
// principal a request runs as, provisioning the user on first sight.
type ResolvePrincipalCommand struct {
	subject  string
	username string

	guard guard.ConstructorGuard
}

// NewResolvePrincipalCommand falls back to the subject when the credential
// carries no username.
func NewResolvePrincipalCommand(subject, username string) (ResolvePrincipalCommand, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ResolvePrincipalCommand{}, errs.NewValueIsRequiredError("subject")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = subject
	}
	return ResolvePrincipalCommand{subject: subject, username: username, guard: guard.NewConstructorGuard()}, nil
}

func (c ResolvePrincipalCommand) Validate() error {
	return c.guard.Validate(ErrResolvePrincipalCommandIsNotConstructed)
}

func (c ResolvePrincipalCommand) Subject() string  { return c.subject }
func (c ResolvePrincipalCommand) Username() string { return c.username }
