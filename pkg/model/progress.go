package model

// Stage identifies a phase of the update pipeline.
type Stage string

// Update pipeline stages in emission order. Preparing and Replacing are
// mutually exclusive: directory installs report Preparing, single-file
// installs report Replacing. Completed is always last and is never emitted
// for a failed update.
const (
	StageDownloading Stage = "downloading"
	StageValidating  Stage = "validating"
	StagePreparing   Stage = "preparing"
	StageReplacing   Stage = "replacing"
	StageCompleted   Stage = "completed"
)

// UpdateProgress is a one-shot progress notification paired with a
// human-readable message. No state is retained between notifications.
type UpdateProgress struct {
	Stage   Stage
	Message string
}
