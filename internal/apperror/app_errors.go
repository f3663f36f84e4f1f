package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoAvailableMove  = errors.New("no available move")
	ErrGameFinished     = errors.New("game is already finished")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrInvalidBoard     = errors.New("invalid board")
	ErrUnknownStorage   = errors.New("unknown storage type")
	ErrNotComputersTurn = errors.New("it's not the computer's turn")
)
