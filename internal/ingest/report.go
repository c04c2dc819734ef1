package ingest

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxRecordedFailures caps how many failures a family keeps in full;
// every failure is still counted.
const MaxRecordedFailures = 10

type Failure struct {
	RecordID string
	Reason   string
}

type FamilyReport struct {
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Report accounts for every record's outcome exactly once.
type Report struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Families   map[Family]*FamilyReport
}

func newReport() *Report {
	families := make(map[Family]*FamilyReport, len(Families))
	for _, f := range Families {
		families[f] = &FamilyReport{}
	}
	return &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Families:  families,
	}
}

func (r *Report) Family(f Family) *FamilyReport {
	fr, ok := r.Families[f]
	if !ok {
		fr = &FamilyReport{}
		r.Families[f] = fr
	}
	return fr
}

func (r *Report) succeed(f Family) {
	r.Family(f).Succeeded++
}

func (r *Report) fail(f Family, recordID string, err error) {
	fr := r.Family(f)
	fr.Failed++
	if len(fr.Failures) < MaxRecordedFailures {
		fr.Failures = append(fr.Failures, Failure{RecordID: recordID, Reason: err.Error()})
	}
}

func (r *Report) TotalSucceeded() int {
	n := 0
	for _, fr := range r.Families {
		n += fr.Succeeded
	}
	return n
}

func (r *Report) TotalFailed() int {
	n := 0
	for _, fr := range r.Families {
		n += fr.Failed
	}
	return n
}

// failureRecordID pulls the record identifier out of a build error so a
// record rejected before its plan exists is still accounted for.
func failureRecordID(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.RecordID
	}
	return ""
}
