package data

import "errors"

var errNotConnected = errors.New("database is not connected")
