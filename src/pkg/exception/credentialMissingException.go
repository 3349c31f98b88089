package exception

import "fmt"

type CredentialMissingException struct {
	Context string
	Err     error
}

func NewCredentialMissingException(message string, err error) *CredentialMissingException {
	return &CredentialMissingException{
		Context: message,
		Err:     err,
	}
}

func (e CredentialMissingException) Error() string {
	return fmt.Sprintf("CredentialMissingException: %s: %v", e.Context, e.Err)
}
