package fxp

// Entry is a resolved plugin identity.
type Entry struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

// Unknown is returned for codes with no registered entry. A miss is a
// normal outcome, not an error.
var Unknown = Entry{Name: "Unknown", Company: "Unknown"}

// Lookup is the external signature table the resolver queries. Key equality
// is an exact 4-byte match; the table owns its own persistence and locking.
type Lookup interface {
	Get(code [4]byte) (Entry, bool)
	Put(code [4]byte, e Entry) error
}

// Resolver maps plugin codes to plugin/company names through an injected
// Lookup.
type Resolver struct {
	table Lookup
}

func NewResolver(table Lookup) *Resolver {
	return &Resolver{table: table}
}

// Resolve never fails: unregistered codes yield the Unknown sentinel.
func (r *Resolver) Resolve(code [4]byte) Entry {
	if e, ok := r.table.Get(code); ok {
		return e
	}
	return Unknown
}

// Register adds or overwrites the entry for code. Pure pass-through to the
// table.
func (r *Resolver) Register(code [4]byte, e Entry) error {
	return r.table.Put(code, e)
}
