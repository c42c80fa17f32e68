package domain

// LoadStatus is the phase of a record load.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusFailed  LoadStatus = "failed"
)

// LoadState is the observable result of a single fetch.
// Records is only set when Ready, Err only when Failed.
type LoadState[R any] struct {
	Status  LoadStatus
	Records []R
	Err     error
}

func Loading[R any]() LoadState[R] {
	return LoadState[R]{Status: StatusLoading}
}

func Ready[R any](records []R) LoadState[R] {
	return LoadState[R]{Status: StatusReady, Records: records}
}

func Failed[R any](err error) LoadState[R] {
	return LoadState[R]{Status: StatusFailed, Err: err}
}

// Terminal reports whether no further transition can happen within the mount.
func (s LoadState[R]) Terminal() bool {
	return s.Status == StatusReady || s.Status == StatusFailed
}

// RecordCount is zero unless the state is Ready.
func (s LoadState[R]) RecordCount() int {
	if s.Status != StatusReady {
		return 0
	}
	return len(s.Records)
}
