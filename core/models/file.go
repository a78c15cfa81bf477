package models

type Status string

const (
	StatusUpdated     Status = "updated"
	StatusUnchanged   Status = "unchanged"
	StatusNotFound    Status = "not_found"
	StatusWouldUpdate Status = "would_update"
)

// TargetFile is one entry of the migration list resolved against the base
// directory.
type TargetFile struct {
	Name string
	Path string
}

type FileResult struct {
	TargetFile
	Status  Status
	Applied []string
	// Diff is only populated for dry runs.
	Diff string
}
