package armature

// Recorder commits live pose values as keyframes on the stage's tracks.
// Recording is the only side-effecting read of current state, so the caller
// must apply every transform for a phase before recording that phase's
// marks — the recorder itself performs no ordering or monotonicity checks.
type Recorder struct {
	stage *Stage
}

// NewRecorder creates a recorder over the given stage.
func NewRecorder(stage *Stage) *Recorder {
	return &Recorder{stage: stage}
}

// RecordPose reads each object's current value on the given channel and
// commits it as a keyframe at mark. Nil entries are skipped. The first error
// from the stage aborts the batch.
func (r *Recorder) RecordPose(objs []*Object, channel Channel, mark int) error {
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		if err := r.stage.InsertKeyframe(obj, channel, mark); err != nil {
			return err
		}
	}
	return nil
}

// RecordFullPose records both the position and rotation channels for every
// object at mark.
func (r *Recorder) RecordFullPose(objs []*Object, mark int) error {
	if err := r.RecordPose(objs, ChannelPosition, mark); err != nil {
		return err
	}
	return r.RecordPose(objs, ChannelRotation, mark)
}
