package ecode

import (
	"fmt"
)

const (
	existMsg    = "already exists"
	notExistMsg = "not found"
)

// AlreadyExist returns already exist message
func AlreadyExist(k ...string) string {
	return join(k, existMsg)
}

// NotExist returns not exist message, e.g. "Item with id 3 not found"
func NotExist(k ...string) string {
	return join(k, notExistMsg)
}

func join(k []string, msg string) string {
	if len(k) > 0 && k[0] != "" {
		return fmt.Sprintf("%s %s", k[0], msg)
	}
	return msg
}
