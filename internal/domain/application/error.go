package application

import "errors"

var (
	ErrNotFound   = errors.New("application not found")
	ErrSeedDenied = errors.New("seed denied: data already exists for this owner")
)
