package traceerrors

import "errors"

var (
	ErrUnknownStep      = errors.New("algotrace: unknown step")
	ErrIndexOutOfRange  = errors.New("algotrace: index out of range")
	ErrEmptyStructure   = errors.New("algotrace: empty structure")
	ErrUnknownAction    = errors.New("algotrace: unknown action")
	ErrUnknownAlgorithm = errors.New("algotrace: unknown algorithm")
	ErrMissingOperand   = errors.New("algotrace: missing operand")
	ErrInvalidInput     = errors.New("algotrace: invalid input")
	ErrNoNumbers        = errors.New("algotrace: no numbers found")
	ErrInvalidNumber    = errors.New("algotrace: invalid number")
	ErrSequenceTooLong  = errors.New("algotrace: sequence too long")
)
