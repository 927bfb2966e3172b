package parse

import "os"

type parseOpts struct {
	expandEnv bool
	lookupEnv func(string) string
}

func (o *parseOpts) lookup() func(string) string {
	if o.lookupEnv != nil {
		return o.lookupEnv
	}
	return os.Getenv
}

type ParseOption func(*parseOpts)

// ExpandEnv substitutes ${NAME} placeholders in string scalars with the
// value of the environment variable NAME after parsing. An unset variable
// substitutes the empty string. The substitution is irreversible; the
// placeholder text is not retained.
func ExpandEnv() ParseOption {
	return func(o *parseOpts) { o.expandEnv = true }
}

// ExpandEnvFrom is ExpandEnv with a caller-supplied lookup function.
func ExpandEnvFrom(lookup func(string) string) ParseOption {
	return func(o *parseOpts) {
		o.expandEnv = true
		o.lookupEnv = lookup
	}
}
