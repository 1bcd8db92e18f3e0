package armature

import "sort"

// Stage is the in-memory scene store the choreography engine runs against.
// It owns every live object, the named collections, and the recorded
// keyframe tracks. All mutation is synchronous: a transform written through
// an object handle is visible to the next read, with no deferred scene-graph
// recompute.
type Stage struct {
	objects     map[string]*Object
	order       []*Object // creation order, for deterministic iteration
	collections map[string]*Collection
	tracks      map[trackKey]*Track
}

// trackKey identifies one keyframe track: one object, one pose channel.
type trackKey struct {
	objectID uint32
	channel  Channel
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{
		objects:     make(map[string]*Object),
		collections: make(map[string]*Collection),
		tracks:      make(map[trackKey]*Track),
	}
}

// --- Objects ---

// NewObject creates an object with the given name and datablock and adds it
// to the stage at identity pose. Panics if the name is already live —
// colliding names are a programmer error in rig setup, not a runtime
// condition (registry duplication reports DuplicateError instead).
func (s *Stage) NewObject(name string, data *ShapeData) *Object {
	if _, ok := s.objects[name]; ok {
		panic("armature: stage already has an object named " + name)
	}
	obj := newObject(name, data)
	s.objects[name] = obj
	s.order = append(s.order, obj)
	return obj
}

// ObjectByName returns the live object with the given name, or nil.
func (s *Stage) ObjectByName(name string) *Object {
	return s.objects[name]
}

// Objects returns all live objects in creation order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Stage) Objects() []*Object {
	return s.order
}

// remove deletes an object from the stage, its collection, and drops its
// recorded tracks. Used only for discarding duplication templates.
func (s *Stage) remove(obj *Object) {
	delete(s.objects, obj.Name)
	for i, o := range s.order {
		if o == obj {
			copy(s.order[i:], s.order[i+1:])
			s.order[len(s.order)-1] = nil
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	if obj.collection != nil {
		obj.collection.unlink(obj)
		obj.collection = nil
	}
	delete(s.tracks, trackKey{obj.ID, ChannelPosition})
	delete(s.tracks, trackKey{obj.ID, ChannelRotation})
}

// --- Collections ---

// EnsureCollection returns the named collection, creating it if absent.
func (s *Stage) EnsureCollection(name string) *Collection {
	if c, ok := s.collections[name]; ok {
		return c
	}
	c := &Collection{Name: name}
	s.collections[name] = c
	return c
}

// CollectionByName returns the named collection, or nil.
func (s *Stage) CollectionByName(name string) *Collection {
	return s.collections[name]
}

// Link places obj into the named collection, creating it if absent.
func (s *Stage) Link(obj *Object, collection string) {
	s.EnsureCollection(collection).link(obj)
}

// --- Keyframes ---

// InsertKeyframe reads obj's current value on the given channel and records
// it at frame. Re-recording at an existing frame overwrites the stored
// value; recording at a new frame extends the track and establishes an
// interpolation segment for playback.
func (s *Stage) InsertKeyframe(obj *Object, channel Channel, frame int) error {
	var value Vec3
	switch channel {
	case ChannelPosition:
		value = obj.Position
	case ChannelRotation:
		value = obj.Rotation
	default:
		return &InvalidChannelError{Channel: channel}
	}

	key := trackKey{obj.ID, channel}
	track := s.tracks[key]
	if track == nil {
		track = &Track{Object: obj, Channel: channel}
		s.tracks[key] = track
	}
	track.insert(frame, value)
	return nil
}

// TrackFor returns the recorded track for one object and channel, or nil if
// nothing has been recorded there.
func (s *Stage) TrackFor(obj *Object, channel Channel) *Track {
	return s.tracks[trackKey{obj.ID, channel}]
}

// --- Track ---

// Keyframe is one recorded (frame, value) sample on a track.
type Keyframe struct {
	Frame int
	Value Vec3
}

// Track is the ordered keyframe sequence for one object's pose channel.
// Frames are kept sorted ascending; a track with two or more keyframes
// defines interpolation segments between neighbors.
type Track struct {
	Object    *Object
	Channel   Channel
	Keyframes []Keyframe
}

// insert records value at frame, overwriting an existing keyframe at the
// same frame or splicing a new one into sorted position.
func (t *Track) insert(frame int, value Vec3) {
	i := sort.Search(len(t.Keyframes), func(i int) bool {
		return t.Keyframes[i].Frame >= frame
	})
	if i < len(t.Keyframes) && t.Keyframes[i].Frame == frame {
		t.Keyframes[i].Value = value
		return
	}
	t.Keyframes = append(t.Keyframes, Keyframe{})
	copy(t.Keyframes[i+1:], t.Keyframes[i:])
	t.Keyframes[i] = Keyframe{Frame: frame, Value: value}
}
