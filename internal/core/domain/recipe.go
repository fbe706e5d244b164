package domain

import "time"

// Recipe derives a new environment from a base environment plus extra packages and variables.
type Recipe struct {
	Name      string
	Base      string
	Overrides []ResolvedRef
	Env       map[string]string
	CreatedAt time.Time
}
