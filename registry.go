package armature

// Registry maps logical part names to live stage objects and owns the two
// bookkeeping structures the stage itself does not: the duplication DAG
// (which object was copied from which, so data-sharing is checkable without
// re-deriving it from naming conventions) and the recorded parent relations.
type Registry struct {
	stage *Stage

	// origins maps a duplicate's name to the template name it was copied
	// from. Chains are preserved: a duplicate of a duplicate points at
	// its immediate source, not the root template.
	origins map[string]string
}

// NewRegistry creates a registry over the given stage.
func NewRegistry(stage *Stage) *Registry {
	return &Registry{
		stage:   stage,
		origins: make(map[string]string),
	}
}

// Stage returns the underlying stage.
func (r *Registry) Stage() *Stage {
	return r.stage
}

// Duplicate creates a new object named newName by copying the template's
// datablock (geometry payload stays shared) and starting from the template's
// current pose. The new object is linked into the named collection, created
// if absent; with an empty collection name it joins the template's own
// collection. The template is untouched.
//
// Returns NotFoundError if no live object has the template name, and
// DuplicateError if newName is already live.
func (r *Registry) Duplicate(templateName, newName, collectionName string) (*Object, error) {
	template := r.stage.ObjectByName(templateName)
	if template == nil {
		return nil, &NotFoundError{Name: templateName}
	}
	if r.stage.ObjectByName(newName) != nil {
		return nil, &DuplicateError{Name: newName}
	}

	obj := r.stage.NewObject(newName, template.Data.copyData(newName))
	obj.Position = template.Position
	obj.Rotation = template.Rotation
	obj.Scale = template.Scale

	if collectionName != "" {
		r.stage.Link(obj, collectionName)
	} else if template.collection != nil {
		template.collection.link(obj)
	}

	r.origins[newName] = templateName
	return obj, nil
}

// Lookup returns the live object with the given name.
func (r *Registry) Lookup(name string) (*Object, error) {
	obj := r.stage.ObjectByName(name)
	if obj == nil {
		return nil, &NotFoundError{Name: name}
	}
	return obj, nil
}

// Bind records parent as the parent of child. This establishes a
// transform-propagation relation for downstream consumers only; the engine
// never applies parent-relative transforms itself. Panics on nil arguments
// or a cycle — both are rig-setup programmer errors.
func (r *Registry) Bind(parent, child *Object) {
	if parent == nil || child == nil {
		panic("armature: cannot bind nil object")
	}
	for p := parent; p != nil; p = p.Parent {
		if p == child {
			panic("armature: binding would create a parent cycle")
		}
	}
	child.Parent = parent
}

// DeleteByName removes every live object matching one of the given names.
// Missing names are ignored: templates are deleted exactly once, after
// duplication, and a template that never existed already failed loudly at
// Duplicate time.
func (r *Registry) DeleteByName(names ...string) {
	for _, name := range names {
		if obj := r.stage.ObjectByName(name); obj != nil {
			r.stage.remove(obj)
		}
	}
}

// Origin returns the template name the given object name was duplicated
// from, or "" if it was not created by duplication.
func (r *Registry) Origin(name string) string {
	return r.origins[name]
}

// SharesData reports whether two named objects share the same underlying
// mesh payload, i.e. sit in the same duplication family.
func (r *Registry) SharesData(a, b string) bool {
	oa := r.stage.ObjectByName(a)
	ob := r.stage.ObjectByName(b)
	if oa == nil || ob == nil {
		return false
	}
	return oa.Data.SharesMesh(ob.Data)
}
