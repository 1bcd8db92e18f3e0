package armature

import "fmt"

// NotFoundError reports a lookup for an object name with no live object.
// During assembly this is fatal: a missing template desynchronizes every
// later phase, so the sequencer aborts instead of skipping.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("armature: object %q not found", e.Name)
}

// DuplicateError reports a duplication target name that is already live.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("armature: object %q already exists", e.Name)
}

// InvalidChannelError reports a keyframe channel the stage does not recognize.
type InvalidChannelError struct {
	Channel Channel
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("armature: invalid keyframe channel %d", uint8(e.Channel))
}
