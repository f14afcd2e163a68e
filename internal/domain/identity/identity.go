package identity

// Identity tells whether an entity has been persisted yet.
// It is either Unsaved or Saved; no other implementations exist.
type Identity interface {
	isIdentity()
}

type Unsaved struct{}

type Saved struct {
	ID int64
}

func (Unsaved) isIdentity() {}
func (Saved) isIdentity()   {}

// IDOf returns the storage id and true for Saved, 0 and false otherwise.
func IDOf(i Identity) (int64, bool) {
	if s, ok := i.(Saved); ok {
		return s.ID, true
	}
	return 0, false
}
