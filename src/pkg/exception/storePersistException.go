package exception

import "fmt"

type StorePersistException struct {
	Context string
	Err     error
}

func NewStorePersistException(message string, err error) *StorePersistException {
	return &StorePersistException{
		Context: message,
		Err:     err,
	}
}

func (e StorePersistException) Error() string {
	return fmt.Sprintf("StorePersistException: %s: %v", e.Context, e.Err)
}
