package ingest

import (
	"errors"
	"fmt"
)

// ValidationError marks one record as malformed (identity key or a
// required reference key absent). It never aborts the batch.
type ValidationError struct {
	Family   Family
	RecordID string
	Field    string
}

func (e *ValidationError) Error() string {
	id := e.RecordID
	if id == "" {
		id = "(unknown)"
	}
	return fmt.Sprintf("%s record %s: missing required field %q", e.Family, id, e.Field)
}

// DependencyMissingError marks an edge whose required endpoint does not
// exist yet, either an ordering violation or a referential gap in the
// source data. Local to one record's transaction.
type DependencyMissingError struct {
	Label    string
	KeyField string
	KeyValue string
}

func (e *DependencyMissingError) Error() string {
	return fmt.Sprintf("dependency missing: no %s node with %s=%q", e.Label, e.KeyField, e.KeyValue)
}

// StoreError wraps a failed store transaction. Fatal means connectivity
// is gone and the batch cannot continue; re-establishment belongs to the
// bootstrap layer, not mid-batch retries.
type StoreError struct {
	Fatal bool
	Err   error
}

func (e *StoreError) Error() string {
	if e.Fatal {
		return fmt.Sprintf("store error (fatal): %v", e.Err)
	}
	return fmt.Sprintf("store error: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsFatal reports whether err ends the whole batch.
func IsFatal(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Fatal
}
