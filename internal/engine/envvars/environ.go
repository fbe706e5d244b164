package envvars

import "os"

// Environ is the process environment seen by the composer.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
}

// OSEnviron reads and writes the real process environment.
type OSEnviron struct{}

// LookupEnv calls os.LookupEnv.
func (OSEnviron) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Setenv calls os.Setenv.
func (OSEnviron) Setenv(key, value string) error { return os.Setenv(key, value) }

// Unsetenv calls os.Unsetenv.
func (OSEnviron) Unsetenv(key string) error { return os.Unsetenv(key) }

// MapEnviron is an in-memory Environ.
type MapEnviron map[string]string

// LookupEnv returns the value of key.
func (m MapEnviron) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Setenv sets key.
func (m MapEnviron) Setenv(key, value string) error {
	m[key] = value
	return nil
}

// Unsetenv removes key.
func (m MapEnviron) Unsetenv(key string) error {
	delete(m, key)
	return nil
}
