package dicontext

import "fmt"

// RegistrationKey identifies a single-value registration. An empty ID is the
// default instance of the type.
type RegistrationKey struct {
	TypeName string
	ID       string
}

// Key builds a RegistrationKey.
func Key(typeName, id string) RegistrationKey {
	return RegistrationKey{TypeName: typeName, ID: id}
}

// String renders the key as type or type#id.
func (k RegistrationKey) String() string {
	if k.ID == "" {
		return k.TypeName
	}
	return fmt.Sprintf("%s#%s", k.TypeName, k.ID)
}
