package service

// Form is the narrow capability the pipeline needs from an inbound request:
// read one named field as a plain string. ok=false covers both an absent
// field and a field that arrived as something other than text, such as a
// file part. Keeping the surface this small decouples the pipeline from any
// HTTP binding and lets tests substitute a plain map.
type Form interface {
	Field(name string) (string, bool)
}

// Fields holds one submission's raw, unvalidated inputs.
type Fields struct {
	Name    string
	Content string
}

// FieldErrors carries one human-readable message per invalid field. Empty
// strings mean the field passed.
type FieldErrors struct {
	Name    string
	Content string
}

func (e FieldErrors) Empty() bool {
	return e.Name == "" && e.Content == ""
}

// MapForm adapts a plain map to Form for tests and previews.
type MapForm map[string]string

func (m MapForm) Field(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
