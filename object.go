package armature

// --- ID counter ---

// objectIDCounter is a plain counter (no atomic — armature is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// --- ShapeData ---

// ShapeData is an object's geometry datablock. Duplicating an object creates a
// new ShapeData handle that shares the underlying mesh payload with its
// source, so siblings duplicated from one template stay cheap and edits to
// the shared mesh show up in every user.
type ShapeData struct {
	// Name of the datablock, for diagnostics only.
	Name string

	// mesh is the shared geometry payload. Duplicates point at the same
	// meshPayload; only the ShapeData wrapper is fresh.
	mesh *meshPayload
}

// meshPayload stands in for the actual vertex data owned by the host. The
// engine never reads it; identity is all that matters for data-sharing
// assertions.
type meshPayload struct {
	source string
}

// NewShapeData creates a root geometry datablock with its own mesh payload.
// Template objects placed in a Stage before choreography start from one of
// these.
func NewShapeData(name string) *ShapeData {
	return &ShapeData{Name: name, mesh: &meshPayload{source: name}}
}

// copyData returns a new ShapeData sharing the receiver's mesh payload.
func (d *ShapeData) copyData(name string) *ShapeData {
	return &ShapeData{Name: name, mesh: d.mesh}
}

// SharesMesh reports whether two datablocks point at the same mesh payload.
func (d *ShapeData) SharesMesh(o *ShapeData) bool {
	return d != nil && o != nil && d.mesh == o.mesh
}

// --- Object ---

// Object is one rigid, named part in the stage. A single flat struct holds
// the full pose; there is no interface dispatch on the transform path.
//
// Rotation is stored as successive per-axis euler angles in radians, and
// relative rotation accumulates by addition to the existing axis angles — it
// never replaces them. Scale components may be negative: mirrored axes are a
// deliberate authoring device for flipped asymmetric parts.
type Object struct {
	// Identity
	ID   uint32
	Name string

	// Shared geometry datablock.
	Data *ShapeData

	// Pose (world-space)
	Position Vec3
	Rotation Vec3 // per-axis euler angles, radians
	Scale    Vec3

	// Parent records a transform-propagation relation for downstream
	// consumers. The engine itself never applies parent-relative
	// transforms; see Registry.Bind.
	Parent *Object

	// collection is the organizational container this object is linked
	// into, nil until linked. Membership carries no transform semantics.
	collection *Collection
}

// newObject creates an object at identity pose with the given datablock.
func newObject(name string, data *ShapeData) *Object {
	return &Object{
		ID:    nextObjectID(),
		Name:  name,
		Data:  data,
		Scale: One,
	}
}

// Collection returns the collection this object is linked into, or nil.
func (o *Object) Collection() *Collection {
	return o.collection
}

// --- Collection ---

// Collection is a named organizational container. Linking an object moves it
// out of its previous collection; an object belongs to at most one.
type Collection struct {
	Name    string
	objects []*Object
}

// Objects returns the linked objects in link order.
// The returned slice MUST NOT be mutated by the caller.
func (c *Collection) Objects() []*Object {
	return c.objects
}

// link appends obj, detaching it from its previous collection first.
func (c *Collection) link(obj *Object) {
	if obj.collection == c {
		return
	}
	if obj.collection != nil {
		obj.collection.unlink(obj)
	}
	obj.collection = c
	c.objects = append(c.objects, obj)
}

// unlink removes obj without clearing obj.collection.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (c *Collection) unlink(obj *Object) {
	for i, o := range c.objects {
		if o == obj {
			copy(c.objects[i:], c.objects[i+1:])
			c.objects[len(c.objects)-1] = nil
			c.objects = c.objects[:len(c.objects)-1]
			return
		}
	}
}
