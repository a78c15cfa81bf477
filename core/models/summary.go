package models

import "fmt"

type Summary struct {
	Results []FileResult
	Counts  map[Status]int
}

func NewSummary() *Summary {
	return &Summary{Counts: make(map[Status]int)}
}

func (s *Summary) Add(r FileResult) {
	s.Results = append(s.Results, r)
	s.Counts[r.Status]++
}

// Clean reports whether every file was found and matched at least one
// legacy pattern.
func (s *Summary) Clean() bool {
	return s.Counts[StatusNotFound] == 0 && s.Counts[StatusUnchanged] == 0
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d updated, %d would update, %d unchanged, %d not found",
		s.Counts[StatusUpdated], s.Counts[StatusWouldUpdate],
		s.Counts[StatusUnchanged], s.Counts[StatusNotFound])
}
