package exception

import "fmt"

type ProviderUnavailableException struct {
	Context string
	Err     error
}

func NewProviderUnavailableException(message string, err error) *ProviderUnavailableException {
	return &ProviderUnavailableException{
		Context: message,
		Err:     err,
	}
}

func (e ProviderUnavailableException) Error() string {
	return fmt.Sprintf("ProviderUnavailableException: %s: %v", e.Context, e.Err)
}
