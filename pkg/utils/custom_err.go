package utils

import "errors"

var (
	ErrTripNotFound           = errors.New("trip not found")
	ErrUploadFolderNotFound   = errors.New("upload folder not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrStoreUnavailable       = errors.New("curated photo store unavailable")
	ErrDuplicatePhotoURL      = errors.New("photo url already registered")
	ErrPhotoNotFound          = errors.New("photo not found")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrUnauthorized           = errors.New("unauthorized")
)
