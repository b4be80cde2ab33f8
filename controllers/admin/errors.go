package adminController

import "errors"

var (
	errInvalidGenre  = errors.New("genre does not exist")
	errInvalidArtist = errors.New("artist does not exist")
)
