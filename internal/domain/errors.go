package domain

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown document category")
	ErrEmptyText       = errors.New("document text is empty")
)
