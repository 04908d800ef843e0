package input

// Counter is the part of the entry store key handling needs
type Counter interface {
	Len() int
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Entries Counter
}

// Length returns the number of discovered entries
func (c *ModelContext) Length() int {
	if c == nil || c.Entries == nil {
		return 0
	}
	return c.Entries.Len()
}
