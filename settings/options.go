package settings

type options struct {
	expandEnv bool
	lookupEnv func(string) string

	fillComments bool
	width        int
}

type Option func(*options)

func getOpts(opts []Option) *options {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	return o
}

// ExpandEnv substitutes ${NAME} placeholders with environment variable
// values while loading. An unset variable substitutes the empty string.
// The substitution is irreversible: the next save writes the resolved
// literal, not the placeholder.
func ExpandEnv() Option {
	return func(o *options) { o.expandEnv = true }
}

// ExpandEnvFrom is ExpandEnv with a caller-supplied lookup function.
func ExpandEnvFrom(lookup func(string) string) Option {
	return func(o *options) {
		o.expandEnv = true
		o.lookupEnv = lookup
	}
}

// FillDefaultComments attaches each field's default annotation as a
// leading comment when saving a field that has no comment of its own.
func FillDefaultComments() Option {
	return func(o *options) { o.fillComments = true }
}

// CommentWidth word-wraps synthesized comments to n columns. 0, the
// default, leaves them unwrapped.
func CommentWidth(n int) Option {
	return func(o *options) { o.width = n }
}
