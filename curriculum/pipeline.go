package curriculum

import (
	"context"
	"fmt"
)

// Uploader turns a staged local file into a durable reference. First
// failure aborts the calling phase; the pipeline imposes no retries.
type Uploader interface {
	Upload(ctx context.Context, file LocalFile) (RemoteFile, error)
}

// Persister submits the reshaped payload to the backend in one request.
type Persister interface {
	SaveCurriculum(ctx context.Context, payload SavePayload) error
}

// Progress reports one completed upload out of the total. Uploads run
// strictly one at a time so done is monotonic and human-trackable.
type Progress func(done, total int, name string)

// UploadError names the asset whose upload failed.
type UploadError struct {
	Asset string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("uploading %s: %v", e.Asset, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistError carries the backend's own error text for verbatim
// display; the in-memory tree survives so the operator can retry.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving curriculum: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// CourseSettings is the course-level state saved alongside the tree.
type CourseSettings struct {
	Description string
	Cover       FileRef
	IntroVideo  FileRef
}

// PendingKeys lists the staging keys of unresolved course-level assets,
// cover before intro video, matching the pipeline's upload order.
func (s *CourseSettings) PendingKeys() []string {
	var keys []string
	if s.Cover.IsPending() {
		keys = append(keys, s.Cover.Local.Key)
	}
	if s.IntroVideo.IsPending() {
		keys = append(keys, s.IntroVideo.Local.Key)
	}
	return keys
}

// Pipeline is the builder's save path: resolve course-level assets,
// resolve every staged file in the tree in deterministic walk order,
// reshape, submit. Uploads that complete before a later failure are not
// rolled back; the backend storage may hold orphans after an aborted
// save. That gap is inherited behavior, kept rather than papered over.
type Pipeline struct {
	uploader  Uploader
	persister Persister
	progress  Progress
}

func NewPipeline(up Uploader, store Persister, progress Progress) *Pipeline {
	if progress == nil {
		progress = func(int, int, string) {}
	}
	return &Pipeline{uploader: up, persister: store, progress: progress}
}

// Save runs the full pipeline against a working copy of the tree.
// Resolved references are written back into the live tree only once
// every upload has succeeded, so an aborted save leaves the in-memory
// state exactly as the operator left it. A persistence failure after
// the write-back keeps the resolved URLs, sparing re-uploads on retry.
func (p *Pipeline) Save(ctx context.Context, tree *Tree, settings *CourseSettings) error {
	// Course-level assets first. A failure here stops the save before
	// any tree upload starts.
	cover := settings.Cover.clone()
	intro := settings.IntroVideo.clone()
	if cover.IsPending() {
		rf, err := p.uploader.Upload(ctx, *cover.Local)
		if err != nil {
			return &UploadError{Asset: "course cover image", Err: err}
		}
		cover = Uploaded(rf)
	}
	if intro.IsPending() {
		rf, err := p.uploader.Upload(ctx, *intro.Local)
		if err != nil {
			return &UploadError{Asset: "course intro video", Err: err}
		}
		intro = Uploaded(rf)
	}

	// Tree uploads on a deep copy, walked in topic order, item order,
	// declared field order. Sequential on purpose.
	work := make([]*Topic, len(tree.topics))
	for i, tp := range tree.topics {
		work[i] = tp.Clone()
	}

	total := 0
	for _, tp := range work {
		for i := range tp.Items {
			total += len(tp.Items[i].pendingFiles())
		}
	}

	done := 0
	for _, tp := range work {
		for i := range tp.Items {
			item := &tp.Items[i]
			for _, ref := range item.pendingFiles() {
				local := *ref.Local
				rf, err := p.uploader.Upload(ctx, local)
				if err != nil {
					return &UploadError{
						Asset: fmt.Sprintf("%q (%s)", local.Name, item.Title),
						Err:   err,
					}
				}
				*ref = Uploaded(rf)
				done++
				p.progress(done, total, local.Name)
			}
		}
	}

	modules, err := EncodeModules(work)
	if err != nil {
		return err
	}

	coverURL, _ := resolvedURL(cover)
	introURL, _ := resolvedURL(intro)
	payload := SavePayload{
		Modules: modules,
		CourseSettings: CourseSettingsRecord{
			Image:       coverURL,
			Video:       introURL,
			Description: settings.Description,
		},
	}

	// Every upload succeeded; adopt the resolved refs before the
	// submit so a retry after a persistence failure skips re-uploads.
	tree.topics = work
	settings.Cover = cover
	settings.IntroVideo = intro

	if err := p.persister.SaveCurriculum(ctx, payload); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}

func resolvedURL(ref FileRef) (string, bool) {
	rf, ok := ref.Resolved()
	if !ok {
		return "", false
	}
	return rf.URL, true
}
