package entity

import "fmt"

// LoadState is the coarse load progress of a page's main frame.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadProvisional
	LoadCommitted
	LoadFinished
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadProvisional:
		return "provisional"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResourceErrorType classifies load failures.
type ResourceErrorType int

const (
	ResourceErrorGeneral ResourceErrorType = iota
	ResourceErrorAccessControl
	ResourceErrorCancellation
	ResourceErrorTimeout
)

// ResourceError describes a failed load.
type ResourceError struct {
	Type        ResourceErrorType
	Domain      string
	Code        int
	FailingURL  string
	Description string
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s error %d loading %s: %s", e.Domain, e.Code, e.FailingURL, e.Description)
}

// IsCancellation reports whether the load was aborted deliberately.
func (e *ResourceError) IsCancellation() bool {
	return e != nil && e.Type == ResourceErrorCancellation
}

// LoadRequest is what a frame is asked to load.
type LoadRequest struct {
	NavigationID NavigationID
	URL          string
	Data         []byte
	MIMEType     string
	IgnoreCaches bool
}
