package domain

import "errors"

var (
	ErrInputsLocked    = errors.New("inputs are locked while animating")
	ErrNoMode          = errors.New("no strategy selected")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrSessionNotFound = errors.New("session not found")
)
