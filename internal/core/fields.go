package core

// Fields is a string key/value container used for custom headers,
// substitutions and custom arguments on a personalization.
type Fields map[string]string

// Get retrieves a value by key.
func (f Fields) Get(key string) string {
	return f[key]
}

// Set sets a value.
func (f Fields) Set(key, value string) {
	f[key] = value
}

// merge copies every entry of src into f.
func (f Fields) merge(src Fields) {
	for k, v := range src {
		f[k] = v
	}
}
