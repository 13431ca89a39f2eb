package model

// LoadStatus represents the loading state of a view's initial data
type LoadStatus string

const (
	// LoadStatusLoading means the view is waiting for its data
	LoadStatusLoading LoadStatus = "loading"

	// LoadStatusReady means all data arrived
	LoadStatusReady LoadStatus = "ready"

	// LoadStatusError means at least one request failed
	LoadStatusError LoadStatus = "error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsFinished returns true once loading ended, successfully or not
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadStatusReady || ls == LoadStatusError
}

// ScaleStatus represents the state of the last scale request
type ScaleStatus string

const (
	// ScaleStatusIdle means no scale request was issued yet
	ScaleStatusIdle ScaleStatus = "idle"

	// ScaleStatusPending means a request is in flight
	ScaleStatusPending ScaleStatus = "pending"

	// ScaleStatusSucceeded means a scaled recipe is displayed
	ScaleStatusSucceeded ScaleStatus = "succeeded"

	// ScaleStatusFailed means validation or the request failed
	ScaleStatusFailed ScaleStatus = "failed"
)

// String returns the string representation of ScaleStatus
func (ss ScaleStatus) String() string {
	return string(ss)
}

// IsActive returns true while a request is in flight
func (ss ScaleStatus) IsActive() bool {
	return ss == ScaleStatusPending
}

// IsFinished returns true if the last request completed (succeeded or failed)
func (ss ScaleStatus) IsFinished() bool {
	return ss == ScaleStatusSucceeded || ss == ScaleStatusFailed
}
