package failures

import "sync"

// Sink is the ordered collection of failures recorded for one test case run. Records are
// kept in the order they were detected.
//
// The read methods treat a nil *Sink as empty, since a case that never failed has no sink.
type Sink struct {
	records []Record
	lock    sync.Mutex
}

func (s *Sink) Append(r Record) {
	s.lock.Lock()
	s.records = append(s.records, r)
	s.lock.Unlock()
}

// Records returns a copy of the recorded failures in insertion order.
func (s *Sink) Records() []Record {
	if s == nil {
		return nil
	}
	s.lock.Lock()
	ret := append([]Record(nil), s.records...)
	s.lock.Unlock()
	return ret
}

func (s *Sink) Len() int {
	if s == nil {
		return 0
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.records)
}

// Empty reports whether no failures have been recorded. The existence of a sink alone does
// not mean the case failed.
func (s *Sink) Empty() bool {
	return s.Len() == 0
}
