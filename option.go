package entityplus

import "github.com/rs/zerolog"

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger replaces the manager's logger. The default is the global
// zerolog logger tagged with the manager instance id.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithErrorCallback registers a handler that is invoked with every error the
// manager surfaces, before the error is returned to the caller. This is the
// callback flavor of the error channel; the returned error is always the
// primary channel.
func WithErrorCallback(fn func(error)) Option {
	return func(m *Manager) {
		m.onError = fn
	}
}

// WithInitialCapacity pre-sizes the registry and each component holder,
// overriding ENTITYPLUS_INITIAL_CAPACITY.
func WithInitialCapacity(n int) Option {
	return func(m *Manager) {
		if n < 0 {
			n = 0
		}
		m.initialCapacity = n
		m.registry = newEntityRegistry(n)
	}
}
