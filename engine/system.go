package engine

// System represents one stage of a frame. Systems run in registration order and
// may keep custom state in their own fields between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
