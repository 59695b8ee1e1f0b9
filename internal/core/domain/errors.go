package domain

import "errors"

var ErrMissingFields = errors.New("all fields are required")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
