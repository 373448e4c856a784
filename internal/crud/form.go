package crud

// FormState is the transient representation of a record while the form is
// open. Every value is a string until parsed on submit, numbers and dates
// included.
type FormState map[string]string

// Get returns the value for key, or the empty string when absent.
func (f FormState) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Clone returns an independent copy of the form state.
func (f FormState) Clone() FormState {
	out := make(FormState, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
