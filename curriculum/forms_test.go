package curriculum

import (
	"errors"
	"testing"
)

func TestLessonFormZeroPadsPlayback(t *testing.T) {
	f := &LessonForm{Name: "Lesson", Hours: 1, Minutes: 2, Seconds: 3}
	item, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Lesson.Duration != "01:02:03" {
		t.Fatalf("duration: %q", item.Lesson.Duration)
	}
}

func TestLessonFormRequiresName(t *testing.T) {
	f := &LessonForm{}
	if _, err := f.Build(); err != ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestLessonRemoveVideoClearsCover(t *testing.T) {
	f := &LessonForm{Name: "Lesson"}
	f.SetVideo(Uploaded(RemoteFile{Name: "v.mp4", URL: "https://cdn/v.mp4"}))
	f.SetCover(Uploaded(RemoteFile{Name: "c.jpg", URL: "https://cdn/c.jpg"}))

	f.RemoveVideo()
	if !f.Video.IsZero() || !f.Cover.IsZero() {
		t.Fatal("removing the video must also clear its cover")
	}
}

func TestLessonVideoSelectionReplacesLocalHandle(t *testing.T) {
	f := &LessonForm{Name: "Lesson"}
	f.SetVideo(Staged(LocalFile{Key: "k1", Name: "raw.mp4"}))
	if !f.Video.IsPending() {
		t.Fatal("raw attachment should stay pending")
	}
	// picking from the library replaces the local handle outright
	f.SetVideo(Uploaded(RemoteFile{Name: "lib.mp4", URL: "https://cdn/lib.mp4"}))
	if f.Video.IsPending() {
		t.Fatal("library pick must drop the local handle")
	}
	if f.Video.URL() != "https://cdn/lib.mp4" {
		t.Fatalf("url: %q", f.Video.URL())
	}
}

func TestLessonFormPrefill(t *testing.T) {
	item := ContentItem{
		ID:    "i1",
		Kind:  KindLesson,
		Title: "Existing",
		Lesson: &LessonContent{
			Description: "desc",
			Duration:    "00:10:30",
		},
	}
	f := NewLessonForm(&item)
	if f.Name != "Existing" || f.Minutes != 10 || f.Seconds != 30 {
		t.Fatalf("prefill wrong: %+v", f)
	}
}

func TestAssignmentGathersAllTabs(t *testing.T) {
	f := NewAssignmentForm(nil)
	f.Title = "Homework 1"
	f.Body = "Read chapter 2."
	f.SwitchTab(AssignmentTabAttachments)
	f.AddAttachment(Uploaded(RemoteFile{Name: "brief.pdf", URL: "https://cdn/brief.pdf"}))
	f.SwitchTab(AssignmentTabSettings)
	f.TotalPoints = 50
	f.MinPassPoints = 25
	f.Resubmission = ResubmissionPolicy{Allowed: true, MaxAttempts: 2}

	// save from the settings tab still gathers every tab's state
	item, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	a := item.Assignment
	if a.Body != "Read chapter 2." || len(a.Attachments) != 1 || a.TotalPoints != 50 {
		t.Fatalf("tabs not gathered: %+v", a)
	}
}

func TestAssignmentMinPassBound(t *testing.T) {
	f := NewAssignmentForm(nil)
	f.Title = "Homework"
	f.TotalPoints = 10
	f.MinPassPoints = 11
	if _, err := f.Build(); err == nil {
		t.Fatal("min pass above total accepted")
	}
}

func TestLiveClassRequiresLink(t *testing.T) {
	f := &LiveClassForm{
		Title:    "Office Hours",
		Date:     "2026-09-01",
		Time:     "18:00",
		Platform: PlatformGoogleMeet,
	}
	if _, err := f.Build(); !errors.Is(err, ErrMissingMeetingLink) {
		t.Fatalf("expected ErrMissingMeetingLink, got %v", err)
	}
	f.MeetingLink = "https://meet.google.com/abc-defg-hij"
	item, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Kind != KindLiveClass {
		t.Fatalf("kind: %q", item.Kind)
	}
}

func TestLiveClassRequiresDateAndTime(t *testing.T) {
	f := &LiveClassForm{Title: "Office Hours", Platform: PlatformZoom, MeetingLink: "https://zoom.us/j/1"}
	if _, err := f.Build(); err == nil {
		t.Fatal("missing date/time accepted")
	}
}
