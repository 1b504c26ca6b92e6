package registry

import "fmt"

// UnknownFamilyError is returned when a family name matches no declared
// spelling. It usually means a typo or a module that was never loaded.
type UnknownFamilyError struct {
	Name string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown capability family: %s", e.Name)
}
