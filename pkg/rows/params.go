package rows

// NormalizeParams maps each requested key to a pointer at its parameter
// value, or nil when the parameter is absent, empty, or equal to
// defaultValue. The result feeds form.FilterForm.Update directly: nil
// entries are the "no filter" no-ops.
func NormalizeParams(params map[string]string, keys []string, defaultValue string) map[string]*string {
	out := make(map[string]*string, len(keys))
	for _, key := range keys {
		value, ok := params[key]
		if !ok || value == "" || value == defaultValue {
			out[key] = nil
			continue
		}
		v := value
		out[key] = &v
	}
	return out
}
