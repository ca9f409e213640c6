package fraud

import "errors"

var (
	// ErrCardNotFound - карта с таким id не зарегистрирована
	ErrCardNotFound = errors.New("card not found")
)
