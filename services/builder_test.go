package services

import (
	"net/http"
	"testing"

	"github.com/skyward-academy/curricula_api/curriculum"
	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/shared"
)

// contentSession wires a builder service with one registered session
// already advanced to the content stage. No peer services are attached;
// the tests below stay on paths that never reach them.
func contentSession(t *testing.T) (*BuilderService, *builderSession) {
	t.Helper()
	svc := &BuilderService{
		sessions: make(map[string]*builderSession),
		byCourse: make(map[string]string),
	}
	sess := &builderSession{
		id:       "sess-1",
		courseID: "course-1",
		tree:     curriculum.NewTree(nil),
	}
	sess.flow.Next()
	svc.sessions[sess.id] = sess
	svc.byCourse[sess.courseID] = sess.id
	return svc, sess
}

func TestSnapshotDetachedFromLiveTree(t *testing.T) {
	svc, sess := contentSession(t)
	tp, _ := sess.tree.AddTopic("Week 1", "Basics")
	if _, err := sess.tree.SaveItem(tp.ID, curriculum.ContentItem{
		Kind:   curriculum.KindLesson,
		Title:  "Lesson A",
		Lesson: &curriculum.LessonContent{Description: "intro"},
	}); err != nil {
		t.Fatalf("save item: %v", err)
	}

	resp := svc.snapshot(sess)

	// Responses outlive the session lock, so later edits must not show
	// through them.
	if err := sess.tree.UpdateTopic(tp.ID, "Renamed", "Changed"); err != nil {
		t.Fatalf("update topic: %v", err)
	}
	if err := sess.tree.StartEditItem(tp.ID, tp.Items[0].ID); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	if _, err := sess.tree.SaveItem(tp.ID, curriculum.ContentItem{
		Kind:   curriculum.KindLesson,
		Title:  "Lesson A v2",
		Lesson: &curriculum.LessonContent{Description: "reworked"},
	}); err != nil {
		t.Fatalf("edit item: %v", err)
	}

	if resp.Topics[0].Title != "Week 1" {
		t.Fatalf("snapshot shares topic with live tree: %q", resp.Topics[0].Title)
	}
	if resp.Topics[0].Items[0].Title != "Lesson A" {
		t.Fatalf("snapshot shares items with live tree: %q", resp.Topics[0].Items[0].Title)
	}
}

func TestSaveItemRejectsKindSwapWhileEditing(t *testing.T) {
	svc, sess := contentSession(t)
	tp, _ := sess.tree.AddTopic("Week 1", "")
	orig, err := sess.tree.SaveItem(tp.ID, curriculum.ContentItem{
		Kind:   curriculum.KindLesson,
		Title:  "Lesson A",
		Lesson: &curriculum.LessonContent{Description: "intro"},
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	if err := sess.tree.StartEditItem(tp.ID, orig.ID); err != nil {
		t.Fatalf("start edit: %v", err)
	}

	_, err = svc.SaveItem(sess.id, tp.ID, dto.SaveItemRequest{
		Kind:  "live_class",
		Title: "Kickoff Call",
		LiveClass: &dto.LiveClassPayload{
			Date:        "2026-09-10",
			Time:        "10:00",
			Duration:    45,
			Platform:    "zoom",
			MeetingLink: "https://zoom.us/j/987",
		},
	})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
	if tp.Items[0].Kind != curriculum.KindLesson || tp.Items[0].Lesson == nil {
		t.Fatalf("item corrupted by rejected save: %+v", tp.Items[0])
	}
}

func TestConsumedKeys(t *testing.T) {
	got := consumedKeys([]string{"a", "b", "c"}, []string{"b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("consumed: %v", got)
	}
	// nothing resolved means nothing to release
	if got := consumedKeys([]string{"a", "b"}, []string{"a", "b"}); got != nil {
		t.Fatalf("consumed: %v", got)
	}
	if got := consumedKeys(nil, nil); got != nil {
		t.Fatalf("consumed: %v", got)
	}
}
