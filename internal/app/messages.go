// Package app contains shared application-layer constants used across the
// account-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserRegistered confirms a successful registration.
	MsgUserRegistered = "User registered successfully"

	// MsgLoginSuccessful confirms a successful credential login.
	MsgLoginSuccessful = "Login successful"

	// MsgProfileUpdated confirms a successful profile update.
	MsgProfileUpdated = "Profile updated successfully"

	// MsgRegisterFieldsRequired is returned when a registration request omits
	// any of its three required fields.
	MsgRegisterFieldsRequired = "Name, email, and password are required"

	// MsgLoginFieldsRequired is returned when a login request omits the email
	// or the password.
	MsgLoginFieldsRequired = "Email and password are required"

	// MsgUpdateFieldsRequired is returned when a profile update carries no
	// fields at all.
	MsgUpdateFieldsRequired = "At least one field (name, email, or password) is required for update"

	// MsgInvalidEmailOrPassword is returned on any failed login, regardless
	// of whether the email is unknown or the password is wrong.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgEmailAlreadyExists is returned when a registration targets an email
	// that already has an account.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgEmailTakenByAnotherUser is returned when a profile update tries to
	// move to an email owned by a different account.
	MsgEmailTakenByAnotherUser = "Email is already taken by another user"

	// MsgUserNotFound is returned when the account referenced by a valid
	// token no longer exists.
	MsgUserNotFound = "User not found"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAuthenticationRequired is returned when a protected endpoint is hit
	// without an Authorization header.
	MsgAuthenticationRequired = "Authentication required"

	// MsgTokenExpiredOrInvalid is returned when a bearer token fails
	// verification for any reason.
	MsgTokenExpiredOrInvalid = "Invalid or expired token"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
