package strfmt

import "os"

// Env resolves identifiers from the process environment.
//
//	strfmt.Format("{HOME}/.config", strfmt.Env{})
type Env struct {
	// Prefix is prepended to every key before it is looked up.
	Prefix string
}

// EnvPrefix returns an [Env] that looks up prefix+key.
func EnvPrefix(prefix string) Env {
	return Env{Prefix: prefix}
}

// Lookup returns the value of the environment variable e.Prefix+key.
func (e Env) Lookup(key string) (any, bool) {
	v, ok := os.LookupEnv(e.Prefix + key)
	if !ok {
		return nil, false
	}
	return v, true
}
