package exception

import "fmt"

type ProviderRejectedException struct {
	Context string
	Err     error
}

func NewProviderRejectedException(message string, err error) *ProviderRejectedException {
	return &ProviderRejectedException{
		Context: message,
		Err:     err,
	}
}

func (e ProviderRejectedException) Error() string {
	return fmt.Sprintf("ProviderRejectedException: %s: %v", e.Context, e.Err)
}
