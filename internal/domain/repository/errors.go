package repository

import "errors"

// ErrNoRowsAffected is returned by Update and Delete when no row has the
// given id.
var ErrNoRowsAffected = errors.New("no rows affected")
