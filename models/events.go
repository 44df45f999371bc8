package models

// ChangeOp is the kind of mutation a [ChangeEvent] reports.
type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
	ChangeDeleted ChangeOp = "deleted"
)

// ChangeEvent is emitted after every successful mutating repository call.
// Views use it as a refresh signal instead of re-reading storage ad hoc.
type ChangeEvent struct {
	// Key is the storage key whose document changed.
	Key string `json:"key"`
	// Op is the mutation kind.
	Op ChangeOp `json:"op"`
	// ID identifies the affected record when there is one.
	ID string `json:"id,omitempty"`
}
