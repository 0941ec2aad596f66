package disclosure

// Control is the authoritative source of a disclosure's open state: either
// [External] when the caller supplies the value, or [Internal] when the
// store owns it.
type Control interface {
	// Open returns the effective open state.
	Open() bool
	control()
}

// External is a controlled disclosure. The caller's value always wins.
type External struct {
	Value bool
}

func (c External) Open() bool { return c.Value }
func (External) control()     {}

// Internal is an uncontrolled disclosure backed by its store.
type Internal struct {
	Store *Store
}

func (c Internal) Open() bool { return c.Store.Get() }
func (Internal) control()     {}

// ResolveControl returns External when open is non-nil, otherwise Internal.
func ResolveControl(open *bool, store *Store) Control {
	if open != nil {
		return External{Value: *open}
	}
	return Internal{Store: store}
}

// Controlled reports whether c is external.
func Controlled(c Control) bool {
	_, ok := c.(External)
	return ok
}
