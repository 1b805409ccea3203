package binstream

// WriteBackHandler binds a child stream's eventual size to a fixed
// position in its parent. It is set on a child once, before that
// child is handed off to be filled by generated serialization code,
// and invoked when the parent later flushes.
type WriteBackHandler struct {
	// Anchor is the absolute position in the parent where the computed
	// value should be written.
	Anchor int64
	// Write receives the parent stream and the child's final byte
	// length, and is responsible for seeking to Anchor and writing
	// whatever representation of that length the format requires.
	Write func(parent *Stream, size int64) error
}

// SetWriteBackHandler registers the handler this stream will invoke
// against its parent once WriteBackChildStreams walks down to it.
func (s *Stream) SetWriteBackHandler(h *WriteBackHandler) {
	s.writeBack = h
}

// AddChildStream registers child as a nested stream whose write-back,
// if any, must run before this stream's own bytes are considered
// final. Children are flushed in the order they were added.
func (s *Stream) AddChildStream(child *Stream) {
	s.children = append(s.children, child)
}

// WriteBackChildStreams walks this stream's children depth-first,
// flushing the deepest streams first (post-order) so that a child's
// own children have already committed their final sizes before the
// child itself reports its size upward. Each child's WriteBackHandler,
// if set, is then invoked against this stream (the parent). The
// parent's own cursor is saved before the walk and restored afterward,
// so a handler patching an earlier anchor never displaces whatever
// position the caller was at; the child list is cleared once flushed
// so a second call is a no-op rather than re-running every handler.
func (s *Stream) WriteBackChildStreams() error {
	saved := s.backend.Position()
	for _, child := range s.children {
		if err := child.WriteBackChildStreams(); err != nil {
			return err
		}
		if child.writeBack == nil {
			continue
		}
		if err := child.WriteAlignToByte(); err != nil {
			return err
		}
		size := child.Size()
		s.debugf("write-back: patching anchor %d with child size %d", child.writeBack.Anchor, size)
		if err := child.writeBack.Write(s, size); err != nil {
			return err
		}
	}
	s.children = nil
	return s.backend.Seek(saved)
}
