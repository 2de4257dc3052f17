package curriculum

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeUploader struct {
	urls   map[string]string // staging key -> url
	failOn string
	calls  []string
}

func (u *fakeUploader) Upload(_ context.Context, f LocalFile) (RemoteFile, error) {
	u.calls = append(u.calls, f.Key)
	if f.Key == u.failOn {
		return RemoteFile{}, errors.New("storage unreachable")
	}
	url, ok := u.urls[f.Key]
	if !ok {
		url = "https://cdn/" + f.Key
	}
	return RemoteFile{Name: f.Name, URL: url, Size: f.Size, Type: f.Type}, nil
}

type fakePersister struct {
	calls    int
	payloads []SavePayload
	err      error
}

func (p *fakePersister) SaveCurriculum(_ context.Context, payload SavePayload) error {
	p.calls++
	p.payloads = append(p.payloads, payload)
	return p.err
}

func treeWithStagedVideo(t *testing.T) (*Tree, string) {
	t.Helper()
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "Basics")
	payload := lessonPayload("Lesson A")
	payload.Lesson.Video = Staged(LocalFile{Key: "vid1", Name: "video1.mp4", Size: 1024, Type: "video/mp4"})
	if _, err := tree.SaveItem(tp.ID, payload); err != nil {
		t.Fatalf("save item: %v", err)
	}
	return tree, tp.ID
}

func TestPipelineResolvesTreeUploads(t *testing.T) {
	tree, topicID := treeWithStagedVideo(t)
	up := &fakeUploader{urls: map[string]string{"vid1": "https://cdn/video1.mp4"}}
	store := &fakePersister{}

	err := NewPipeline(up, store, nil).Save(context.Background(), tree, &CourseSettings{Description: "course"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("persister calls: %d", store.calls)
	}

	tp, _ := tree.Topic(topicID)
	if tp.Items[0].Lesson.Video.IsPending() {
		t.Fatal("local handle survived a successful save")
	}
	if got := tp.Items[0].Lesson.Video.URL(); got != "https://cdn/video1.mp4" {
		t.Fatalf("video url: %q", got)
	}

	rec := store.payloads[0].Modules[0].Lessons[0]
	if rec.VideoURL != "https://cdn/video1.mp4" {
		t.Fatalf("payload video_url: %q", rec.VideoURL)
	}
}

func TestPipelineUploadFailureSkipsPersist(t *testing.T) {
	tree, topicID := treeWithStagedVideo(t)
	up := &fakeUploader{failOn: "vid1"}
	store := &fakePersister{}

	err := NewPipeline(up, store, nil).Save(context.Background(), tree, &CourseSettings{})
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if store.calls != 0 {
		t.Fatal("persister must never run after an upload failure")
	}

	// the in-memory tree is untouched so the operator can retry
	tp, _ := tree.Topic(topicID)
	if !tp.Items[0].Lesson.Video.IsPending() {
		t.Fatal("tree mutated on aborted save")
	}
}

func TestPipelineCourseAssetFailureStopsBeforeTree(t *testing.T) {
	tree, _ := treeWithStagedVideo(t)
	up := &fakeUploader{failOn: "cover1"}
	store := &fakePersister{}
	settings := &CourseSettings{
		Cover: Staged(LocalFile{Key: "cover1", Name: "cover.jpg"}),
	}

	err := NewPipeline(up, store, nil).Save(context.Background(), tree, settings)
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if len(up.calls) != 1 {
		t.Fatalf("tree uploads started after course asset failure: %v", up.calls)
	}
	if store.calls != 0 {
		t.Fatal("persister ran")
	}
	if !settings.Cover.IsPending() {
		t.Fatal("settings mutated on aborted save")
	}
}

func TestPipelinePersistFailureKeepsTree(t *testing.T) {
	tree, topicID := treeWithStagedVideo(t)
	up := &fakeUploader{}
	store := &fakePersister{err: errors.New("course not found")}

	err := NewPipeline(up, store, nil).Save(context.Background(), tree, &CourseSettings{})
	var pe *PersistError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistError, got %v", err)
	}
	// the server's own text surfaces verbatim
	if pe.Unwrap().Error() != "course not found" {
		t.Fatalf("server error lost: %v", pe)
	}

	// tree content survives; uploads already done are kept resolved so a
	// retry does not re-upload
	tp, _ := tree.Topic(topicID)
	if len(tp.Items) != 1 {
		t.Fatal("tree content lost")
	}
	if tp.Items[0].Lesson.Video.IsPending() {
		t.Fatal("completed upload discarded")
	}
}

func TestPipelineSequentialProgress(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Week 1", "")
	for i := 0; i < 3; i++ {
		payload := lessonPayload(fmt.Sprintf("Lesson %d", i))
		payload.Lesson.Video = Staged(LocalFile{Key: fmt.Sprintf("v%d", i), Name: fmt.Sprintf("v%d.mp4", i)})
		tree.SaveItem(tp.ID, payload)
	}

	var seen []string
	progress := func(done, total int, name string) {
		seen = append(seen, fmt.Sprintf("%d/%d %s", done, total, name))
	}
	up := &fakeUploader{}
	err := NewPipeline(up, &fakePersister{}, progress).Save(context.Background(), tree, &CourseSettings{})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	want := []string{"1/3 v0.mp4", "2/3 v1.mp4", "3/3 v2.mp4"}
	if len(seen) != len(want) {
		t.Fatalf("progress lines: %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, seen[i], want[i])
		}
	}
	// walk order is topic order then item order, one at a time
	for i, key := range []string{"v0", "v1", "v2"} {
		if up.calls[i] != key {
			t.Fatalf("upload order: %v", up.calls)
		}
	}
}

func TestPipelineCountsNestedCollections(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Week 1", "")

	lesson := lessonPayload("Lesson")
	lesson.Lesson.Video = Staged(LocalFile{Key: "v", Name: "v.mp4"})
	lesson.Lesson.Cover = Staged(LocalFile{Key: "c", Name: "c.jpg"})
	lesson.Lesson.Files = []FileRef{Staged(LocalFile{Key: "f1", Name: "f1.pdf"})}
	tree.SaveItem(tp.ID, lesson)

	assignment := ContentItem{
		Kind:  KindAssignment,
		Title: "HW",
		Assignment: &AssignmentContent{
			TotalPoints:   10,
			MinPassPoints: 5,
			Attachments:   []FileRef{Staged(LocalFile{Key: "a1", Name: "a1.zip"})},
		},
	}
	tree.SaveItem(tp.ID, assignment)

	if n := tree.PendingUploads(); n != 4 {
		t.Fatalf("pending uploads: %d", n)
	}

	up := &fakeUploader{}
	if err := NewPipeline(up, &fakePersister{}, nil).Save(context.Background(), tree, &CourseSettings{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// declared field order within the item: video, cover, files, then
	// the next item's attachments
	wantOrder := []string{"v", "c", "f1", "a1"}
	for i, key := range wantOrder {
		if up.calls[i] != key {
			t.Fatalf("upload order: %v", up.calls)
		}
	}
	if tree.PendingUploads() != 0 {
		t.Fatal("pending handles survived")
	}
}

// stagedUploader serves uploads out of a staging area the way the real
// uploader does: a key whose blob is gone fails with "no staged
// content". First attempt against failOn breaks; later attempts work.
type stagedUploader struct {
	blobs  map[string]bool
	failOn string
	failed bool
	calls  []string
}

func (u *stagedUploader) Upload(_ context.Context, f LocalFile) (RemoteFile, error) {
	u.calls = append(u.calls, f.Key)
	if !u.blobs[f.Key] {
		return RemoteFile{}, fmt.Errorf("no staged content for %q", f.Name)
	}
	if f.Key == u.failOn && !u.failed {
		u.failed = true
		return RemoteFile{}, errors.New("storage unreachable")
	}
	return RemoteFile{Name: f.Name, URL: "https://cdn/" + f.Key}, nil
}

func TestPipelineRetrySucceedsAfterPartialUploadFailure(t *testing.T) {
	tree, topicID := treeWithStagedVideo(t)
	second := lessonPayload("Lesson B")
	second.Lesson.Video = Staged(LocalFile{Key: "vid2", Name: "video2.mp4"})
	if _, err := tree.SaveItem(topicID, second); err != nil {
		t.Fatalf("save item: %v", err)
	}

	up := &stagedUploader{blobs: map[string]bool{"vid1": true, "vid2": true}, failOn: "vid2"}
	store := &fakePersister{}
	p := NewPipeline(up, store, nil)

	err := p.Save(context.Background(), tree, &CourseSettings{})
	var ue *UploadError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	if store.calls != 0 {
		t.Fatal("persister ran after an upload failure")
	}

	// every reference is still pending, so the caller keeps every blob
	// staged and the retry re-uploads from the top
	got := tree.PendingKeys()
	if len(got) != 2 || got[0] != "vid1" || got[1] != "vid2" {
		t.Fatalf("pending keys after failure: %v", got)
	}

	if err := p.Save(context.Background(), tree, &CourseSettings{}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("persister calls: %d", store.calls)
	}
	want := []string{"vid1", "vid2", "vid1", "vid2"}
	if len(up.calls) != len(want) {
		t.Fatalf("upload calls: %v", up.calls)
	}
	for i := range want {
		if up.calls[i] != want[i] {
			t.Fatalf("upload calls: %v", up.calls)
		}
	}
	if tree.PendingUploads() != 0 {
		t.Fatal("pending handles survived the retry")
	}
}

func TestCourseSettingsPendingKeys(t *testing.T) {
	s := &CourseSettings{
		Cover:      Staged(LocalFile{Key: "cov", Name: "cover.jpg"}),
		IntroVideo: Staged(LocalFile{Key: "intro", Name: "intro.mp4"}),
	}
	got := s.PendingKeys()
	if len(got) != 2 || got[0] != "cov" || got[1] != "intro" {
		t.Fatalf("pending keys: %v", got)
	}
	s.Cover = Uploaded(RemoteFile{URL: "https://cdn/cover.jpg"})
	if got := s.PendingKeys(); len(got) != 1 || got[0] != "intro" {
		t.Fatalf("pending keys after resolve: %v", got)
	}
}
