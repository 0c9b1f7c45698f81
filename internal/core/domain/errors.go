package domain

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrUnknownField   = errors.New("unknown filter field")
	ErrAINotReady     = errors.New("summarizer not configured")
	ErrEmptyInputText = errors.New("empty input text")
)
