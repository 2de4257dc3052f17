package curriculum

import "fmt"

// LocalFile is an operator-attached binary that has been staged in the
// editing session but not yet uploaded to durable storage. Key addresses
// the staged bytes; the builder never carries the bytes themselves.
type LocalFile struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// RemoteFile is a durable media reference, safe to persist.
type RemoteFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// FileRef is either a staged LocalFile awaiting upload or an uploaded
// RemoteFile. At most one side is set; the zero value means no file is
// attached. The save pipeline guarantees no Local side survives to the
// persistence payload.
type FileRef struct {
	Local  *LocalFile  `json:"local,omitempty"`
	Remote *RemoteFile `json:"remote,omitempty"`
}

// Staged wraps a LocalFile into a pending reference.
func Staged(f LocalFile) FileRef {
	return FileRef{Local: &f}
}

// Uploaded wraps a RemoteFile into a resolved reference.
func Uploaded(f RemoteFile) FileRef {
	return FileRef{Remote: &f}
}

func (r FileRef) IsZero() bool {
	return r.Local == nil && r.Remote == nil
}

func (r FileRef) IsPending() bool {
	return r.Local != nil
}

// Resolved returns the durable reference if one is present.
func (r FileRef) Resolved() (RemoteFile, bool) {
	if r.Remote == nil {
		return RemoteFile{}, false
	}
	return *r.Remote, true
}

// URL returns the durable URL or "" while the reference is pending.
func (r FileRef) URL() string {
	if r.Remote == nil {
		return ""
	}
	return r.Remote.URL
}

func (r FileRef) clone() FileRef {
	out := FileRef{}
	if r.Local != nil {
		l := *r.Local
		out.Local = &l
	}
	if r.Remote != nil {
		rf := *r.Remote
		out.Remote = &rf
	}
	return out
}

// ErrPendingFile reports an attempt to persist a reference that still
// points at staged local bytes.
type ErrPendingFile struct {
	Asset string
}

func (e *ErrPendingFile) Error() string {
	return fmt.Sprintf("%s still references an unuploaded local file", e.Asset)
}
