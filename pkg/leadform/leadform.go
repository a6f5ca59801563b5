// Package leadform holds the contact form shown at the end of the flow.
// Nothing is validated or stored; a submission is written out as one JSON
// line.
package leadform

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Copy shown on the form
const (
	Headline    = "Enjoy Your Process"
	SubmitLabel = "SUBMIT TO HEXCELLENCE"
	BucketLabel = "Revenue Bucket"
)

// Bucket is a revenue range the visitor can pick
type Bucket struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Buckets lists the selectable revenue ranges
var Buckets = []Bucket{
	{ID: "starter", Label: "$0 - $100k"},
	{ID: "growth", Label: "$100k - $1M"},
	{ID: "scale", Label: "$1M+"},
}

// FindBucket looks up a bucket by id
func FindBucket(id string) (Bucket, bool) {
	for _, b := range Buckets {
		if b.ID == id {
			return b, true
		}
	}
	return Bucket{}, false
}

// Lead is what the visitor typed
type Lead struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Bucket  string `json:"bucket,omitempty"`
}

// Submission is a lead with the time it was sent
type Submission struct {
	Lead
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter writes submissions to w, one JSON object per line
type Submitter struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewSubmitter creates a submitter writing to w
func NewSubmitter(w io.Writer) *Submitter {
	return &Submitter{w: w, now: time.Now}
}

// Submit stamps and writes the lead
func (s *Submitter) Submit(lead Lead) (Submission, error) {
	sub := Submission{Lead: lead, SubmittedAt: s.now().UTC()}

	data, err := sonic.Marshal(sub)
	if err != nil {
		return sub, fmt.Errorf("failed to encode lead: %w", err)
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(data); err != nil {
		return sub, fmt.Errorf("failed to write lead: %w", err)
	}
	return sub, nil
}
