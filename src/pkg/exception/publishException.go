package exception

import "fmt"

type PublishException struct {
	Context string
	Err     error
}

func NewPublishException(message string, err error) *PublishException {
	return &PublishException{
		Context: message,
		Err:     err,
	}
}

func (e PublishException) Error() string {
	return fmt.Sprintf("PublishException: %s: %v", e.Context, e.Err)
}
