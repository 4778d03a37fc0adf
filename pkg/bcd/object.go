package bcd

// Object is a single BCD entity — boot manager, OS loader, etc. — identified
// by a Guid and carrying an ordered, bounded set of Elements. Element
// insertion order is preserved and observable by iteration.
type Object struct {
	ID         Guid
	ObjectType uint32
	elements   []Element
	limits     Limits
}

// NewObject constructs an empty object with the given id, object type, and
// element-count ceiling.
func NewObject(id Guid, objectType uint32, limits Limits) *Object {
	return &Object{ID: id, ObjectType: objectType, limits: limits}
}

// Elements returns the object's elements in insertion order. The returned
// slice must not be mutated by the caller.
func (o *Object) Elements() []Element {
	return o.elements
}

// ElementCount returns the number of elements currently held.
func (o *Object) ElementCount() int {
	return len(o.elements)
}

// AddElement appends el, returning a KindCapacity error if the object is
// already at its element-count ceiling. No type-uniqueness check is
// performed; see SetElement for upsert semantics.
func (o *Object) AddElement(el Element) error {
	const op = "Object.AddElement"
	if len(o.elements) >= o.limits.MaxElementsPerObject {
		return newErr(KindCapacity, op, nil)
	}
	o.elements = append(o.elements, el)
	return nil
}

// FindElement returns the first element with the given type, by linear scan.
func (o *Object) FindElement(elementType uint32) (Element, bool) {
	for _, el := range o.elements {
		if el.Type == elementType {
			return el, true
		}
	}
	return Element{}, false
}

// SetElement replaces the element with el.Type in place if one exists
// (preserving position and total element count), otherwise appends it. This
// is the enforcement point for "one element per type" — repeated calls with
// the same type are idempotent.
func (o *Object) SetElement(el Element) error {
	for i := range o.elements {
		if o.elements[i].Type == el.Type {
			o.elements[i] = el
			return nil
		}
	}
	return o.AddElement(el)
}

// RemoveElement deletes the element with the given type, compacting the
// slice to preserve order of the remainder. Returns a KindNotFound error if
// no element of that type exists.
func (o *Object) RemoveElement(elementType uint32) error {
	const op = "Object.RemoveElement"
	for i := range o.elements {
		if o.elements[i].Type == elementType {
			o.elements = append(o.elements[:i], o.elements[i+1:]...)
			return nil
		}
	}
	return newErr(KindNotFound, op, nil)
}

// clone returns a deep copy of o, used by Store.Clone.
func (o *Object) clone() *Object {
	dup := &Object{ID: o.ID, ObjectType: o.ObjectType, limits: o.limits}
	dup.elements = make([]Element, len(o.elements))
	for i, el := range o.elements {
		dup.elements[i] = el
		if el.Binary != nil {
			dup.elements[i].Binary = append([]byte(nil), el.Binary...)
		}
	}
	return dup
}
