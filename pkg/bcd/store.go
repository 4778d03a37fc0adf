package bcd

// Store is an ordered, bounded sequence of Objects. Iteration order is
// insertion order. A Store is value-like: mutated through load or explicit
// add/delete calls, and Clone performs a deep copy.
type Store struct {
	objects []*Object
	limits  Limits
}

// NewStore constructs an empty store with the given capacity limits.
func NewStore(limits Limits) *Store {
	return &Store{limits: limits}
}

// Limits returns the capacity ceilings this store enforces.
func (s *Store) Limits() Limits {
	return s.limits
}

// Reset empties the store without reallocating its backing limits.
func (s *Store) Reset() {
	s.objects = nil
}

// ObjectCount returns the number of objects currently held.
func (s *Store) ObjectCount() int {
	return len(s.objects)
}

// AddObject appends obj, returning a KindCapacity error once the store is at
// MaxObjects. Id uniqueness is not checked here; callers wrapping this in an
// upsert (e.g. SetObject) are responsible for it.
func (s *Store) AddObject(obj *Object) error {
	const op = "Store.AddObject"
	if len(s.objects) >= s.limits.MaxObjects {
		return newErr(KindCapacity, op, nil)
	}
	s.objects = append(s.objects, obj)
	return nil
}

// SetObject upserts obj by id: replaces the existing object with the same
// id in place if present, otherwise appends via AddObject.
func (s *Store) SetObject(obj *Object) error {
	for i, existing := range s.objects {
		if existing.ID.Equal(obj.ID) {
			s.objects[i] = obj
			return nil
		}
	}
	return s.AddObject(obj)
}

// DeleteObject removes the object with the given id, compacting to preserve
// order. Returns a KindNotFound error if no such object exists.
func (s *Store) DeleteObject(id Guid) error {
	const op = "Store.DeleteObject"
	for i, obj := range s.objects {
		if obj.ID.Equal(id) {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return nil
		}
	}
	return newErr(KindNotFound, op, nil)
}

// FindObjectByID returns the object with the given id, by linear scan.
func (s *Store) FindObjectByID(id Guid) (*Object, bool) {
	for _, obj := range s.objects {
		if obj.ID.Equal(id) {
			return obj, true
		}
	}
	return nil, false
}

// ObjectAt returns the object at index i. Returns a KindNotFound error if i
// is out of bounds.
func (s *Store) ObjectAt(i int) (*Object, error) {
	const op = "Store.ObjectAt"
	if i < 0 || i >= len(s.objects) {
		return nil, newErr(KindNotFound, op, nil)
	}
	return s.objects[i], nil
}

// Objects returns every object in insertion order. The returned slice must
// not be mutated by the caller.
func (s *Store) Objects() []*Object {
	return s.objects
}

// Clone returns a deep byte copy of s: every object and its elements are
// independently copied.
func (s *Store) Clone() *Store {
	dup := &Store{limits: s.limits}
	dup.objects = make([]*Object, len(s.objects))
	for i, obj := range s.objects {
		dup.objects[i] = obj.clone()
	}
	return dup
}
