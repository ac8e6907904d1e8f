package types

import "errors"

// Domain error sentinels. Repositories and services wrap these with %w so the
// HTTP layer can translate them through a single point (api.HandleDomainError).
var ErrValidation = errors.New("invalid or missing input")
var ErrConflict = errors.New("item already exists or conflict")
var ErrUnauthenticated = errors.New("authentication required or invalid credentials")
var ErrForbidden = errors.New("action forbidden")
var ErrNotFound = errors.New("requested item not found")
var ErrInternal = errors.New("internal error")
