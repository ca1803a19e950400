package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")
var ErrNoSession = errors.New("no active session")
var ErrSessionExpired = errors.New("session expired")
var ErrTokenRevoked = errors.New("token revoked")
