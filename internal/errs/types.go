package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type ValidationError struct {
	ErrorMessage
}

type InsufficientBalanceError struct {
	ErrorMessage
}

type NotFoundError struct {
	ErrorMessage
}

type UnknownAccountTypeError struct {
	ErrorMessage
}

type MalformedRecordError struct {
	ErrorMessage
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInsufficientBalanceError(message string) *InsufficientBalanceError {
	return &InsufficientBalanceError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnknownAccountTypeError(message string) *UnknownAccountTypeError {
	return &UnknownAccountTypeError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewMalformedRecordError(message string) *MalformedRecordError {
	return &MalformedRecordError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}
