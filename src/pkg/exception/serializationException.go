package exception

import "fmt"

type SerializationException struct {
	Context string
	Err     error
}

func NewSerializationException(message string, err error) *SerializationException {
	return &SerializationException{
		Context: message,
		Err:     err,
	}
}

func (e SerializationException) Error() string {
	return fmt.Sprintf("SerializationException: %s: %v", e.Context, e.Err)
}
