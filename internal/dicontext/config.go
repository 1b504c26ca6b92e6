package dicontext

// Config is the per-context configuration, fixed before the context attaches.
type Config struct {
	// LoggingName turns on verbose registration logging for this context
	// when non-empty.
	LoggingName string

	// ReRegister lists the keys whose registrations in this context should
	// be visible from the parent context.
	ReRegister []RegistrationKey

	// ReMultiregister lists the families whose multi-registrations in this
	// context should be visible from the parent context.
	ReMultiregister []string
}
