package exception

import "fmt"

type StoreTraversalException struct {
	Context string
	Err     error
}

func NewStoreTraversalException(message string, err error) *StoreTraversalException {
	return &StoreTraversalException{
		Context: message,
		Err:     err,
	}
}

func (e StoreTraversalException) Error() string {
	return fmt.Sprintf("StoreTraversalException: %s: %v", e.Context, e.Err)
}
