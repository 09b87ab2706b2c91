package shapes

// Alternates is an ordered, duplicate-free list of template candidate names.
// Appends preserve first-occurrence order so the resolver can rely on the
// most-general-first convention the display drivers produce.
type Alternates struct {
	values []string
}

// Add appends candidates, skipping empty strings and values already present.
func (a *Alternates) Add(values ...string) {
	for _, value := range values {
		if value == "" || a.Contains(value) {
			continue
		}
		a.values = append(a.values, value)
	}
}

// Contains reports whether the candidate is already listed.
func (a *Alternates) Contains(value string) bool {
	for _, existing := range a.values {
		if existing == value {
			return true
		}
	}
	return false
}

// Values returns a copy of the candidates in insertion order.
func (a *Alternates) Values() []string {
	if len(a.values) == 0 {
		return nil
	}
	out := make([]string, len(a.values))
	copy(out, a.values)
	return out
}

// Len returns the number of candidates.
func (a *Alternates) Len() int {
	return len(a.values)
}

// Last returns the most specific candidate, or "" when empty.
func (a *Alternates) Last() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[len(a.values)-1]
}
