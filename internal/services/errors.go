package services

import "errors"

// ErrProjectNotFound is returned for ids missing from the catalog
var ErrProjectNotFound = errors.New("project not found")
