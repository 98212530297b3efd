package chat

import "errors"

// RuleError is a business rule violation. The message text is part of the
// observable contract: the HTTP layer surfaces it verbatim with a 400
// status, so the constants below must not be reworded.
type RuleError string

// Error implements the error interface.
func (e RuleError) Error() string {
	return string(e)
}

const (
	// ErrUsernameAlreadyInUse is returned when registering a name that
	// another user already holds (exact, case-sensitive match).
	ErrUsernameAlreadyInUse RuleError = "Username already in use."

	// ErrInvalidCredentials covers both an unknown name and a wrong
	// password, so a caller can not probe which usernames exist.
	ErrInvalidCredentials RuleError = "Invalid credentials."

	// ErrUserDoesNotExist is returned when an operation references a user
	// id that is not present in the registry.
	ErrUserDoesNotExist RuleError = "User does not exist."

	// ErrFollowerOrFolloweeDoesNotExist fires when either side of a follow
	// is unregistered; the caller is not told which one.
	// The "exit" typo is kept: clients assert on the literal text.
	ErrFollowerOrFolloweeDoesNotExist RuleError = "At least one of the users does not exit."

	// ErrEmptyUserName rejects empty or whitespace-only user names.
	ErrEmptyUserName RuleError = "Can't create user with empty name."

	// ErrEmptyPassword rejects empty or whitespace-only passwords.
	ErrEmptyPassword RuleError = "Can't create credential with empty password."
)

// IsRuleViolation reports whether err is a business rule violation, as
// opposed to an unexpected internal error.
func IsRuleViolation(err error) bool {
	var ruleErr RuleError

	return errors.As(err, &ruleErr)
}
