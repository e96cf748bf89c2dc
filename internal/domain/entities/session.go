package entities

import "time"

// QuoteSession is one in-progress configuration. The catalog is the snapshot
// taken when the session started; every pricing call uses it.
type QuoteSession struct {
	ID        string
	Catalog   Catalog
	State     *SelectionState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone copies the session so the stored value and the caller's value do
// not share the selection state. The catalog is read-only and is shared.
func (s QuoteSession) Clone() QuoteSession {
	out := s
	if s.State != nil {
		out.State = s.State.Clone()
	}
	return out
}
