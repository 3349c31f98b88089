package exception

import "fmt"

type BusinessCardDoesNotExistException struct {
	Context string
}

func NewBusinessCardDoesNotExistException(message string) *BusinessCardDoesNotExistException {
	return &BusinessCardDoesNotExistException{
		Context: message,
	}
}

func (e BusinessCardDoesNotExistException) Error() string {
	return fmt.Sprintf("BusinessCardDoesNotExistException: %s", e.Context)
}
