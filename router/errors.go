package router

import "errors"

// ErrUnsupportedStore is returned when the storage backend does not expose a GORM handle.
var ErrUnsupportedStore = errors.New("router: storage backend does not provide a *gorm.DB")
