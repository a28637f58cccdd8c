package provider

import (
	"io"
	"iter"
	"sync"
)

// NewStream wraps a fragment sequence into a Stream. The closer, when not nil, owns the
// underlying connection and is closed exactly once when the stream ends or is abandoned.
func NewStream(seq iter.Seq2[string, error], closer io.Closer) *Stream {
	next, stop := iter.Pull2(seq)
	return &Stream{
		next:   next,
		stop:   stop,
		closer: closer,
	}
}

// Stream is a single-consumer, pull-based sequence of text fragments.
//
//	for stream.Next() {
//	    fmt.Print(stream.Current())
//	}
//	if err := stream.Err(); err != nil {
//	    return err
//	}
type Stream struct {
	next   func() (string, error, bool)
	stop   func()
	closer io.Closer

	current string
	err     error
	done    bool

	closeOnce sync.Once
	closeErr  error
}

// Next advances to the next fragment. It returns false when the sequence is exhausted,
// an error occurred or the stream was closed; the connection is released at that point.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	for {
		fragment, err, ok := s.next()
		if !ok {
			s.finish()
			return false
		}
		if err != nil {
			s.err = err
			s.finish()
			return false
		}
		if fragment == "" {
			continue
		}
		s.current = fragment
		return true
	}
}

// Current returns the fragment produced by the last successful call to Next.
func (s *Stream) Current() string {
	return s.current
}

// Err returns the error that ended the stream, if any.
func (s *Stream) Err() error {
	return s.err
}

// Close stops the sequence and releases the underlying connection. It is safe to call
// more than once and after the stream has ended.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.done = true
		s.stop()
		if s.closer != nil {
			s.closeErr = s.closer.Close()
		}
	})
	return s.closeErr
}

// Fragments exposes the stream as a range-over-func sequence. Breaking out of the loop
// closes the stream. A terminal error is yielded once, paired with an empty fragment.
func (s *Stream) Fragments() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		defer s.Close()
		for s.Next() {
			if !yield(s.Current(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", err)
		}
	}
}

func (s *Stream) finish() {
	_ = s.Close()
}
