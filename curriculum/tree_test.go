package curriculum

import (
	"errors"
	"testing"
)

func lessonPayload(title string) ContentItem {
	return ContentItem{
		Kind:  KindLesson,
		Title: title,
		Lesson: &LessonContent{
			Description: "about " + title,
			Duration:    "00:05:00",
		},
	}
}

func TestAddTopic(t *testing.T) {
	tree := NewTree(nil)

	tp, err := tree.AddTopic("Intro", "Basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Topics()) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(tree.Topics()))
	}
	if tp.Title != "Intro" || tp.Summary != "Basics" {
		t.Fatalf("unexpected topic: %+v", tp)
	}
	if len(tp.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(tp.Items))
	}
	if tp.ID == "" {
		t.Fatal("expected minted id")
	}
}

func TestAddTopicRequiresTitle(t *testing.T) {
	tree := NewTree(nil)
	if _, err := tree.AddTopic("", "summary"); err != ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if len(tree.Topics()) != 0 {
		t.Fatal("topic list should be untouched")
	}
}

func TestSaveItemAppendsWithFreshID(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")

	first, err := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := tree.SaveItem(tp.ID, lessonPayload("Lesson B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("ids not distinct: %q vs %q", first.ID, second.ID)
	}
	if tp.Items[0].Title != "Lesson A" || tp.Items[1].Title != "Lesson B" {
		t.Fatal("append order not preserved")
	}
	if tree.Focus().Kind != FocusNone {
		t.Fatal("save must clear the cursor")
	}
}

func TestSaveItemEditPreservesID(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	orig, _ := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))
	origID := orig.ID

	if err := tree.StartEditItem(tp.ID, origID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := lessonPayload("Lesson A v2")
	replacement.ID = "should-be-ignored"
	saved, err := tree.SaveItem(tp.ID, replacement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != origID {
		t.Fatalf("id changed: got %q want %q", saved.ID, origID)
	}
	if saved.Title != "Lesson A v2" {
		t.Fatalf("fields not replaced: %q", saved.Title)
	}
	if len(tp.Items) != 1 {
		t.Fatalf("expected in-place replace, got %d items", len(tp.Items))
	}
	if tree.Focus().Kind != FocusNone {
		t.Fatal("save must clear the cursor")
	}
}

func TestSaveItemEditRejectsKindChange(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	orig, _ := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))

	if err := tree.StartEditItem(tp.ID, orig.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replacement := ContentItem{
		Kind:  KindQuiz,
		Title: "Not a lesson",
		Quiz:  &QuizContent{Summary: "swap attempt"},
	}
	if _, err := tree.SaveItem(tp.ID, replacement); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	if tp.Items[0].Kind != KindLesson || tp.Items[0].Title != "Lesson A" {
		t.Fatalf("item mutated by rejected save: %+v", tp.Items[0])
	}
	if tp.Items[0].Lesson == nil {
		t.Fatal("lesson data lost")
	}
}

func TestSingleActiveEditorCursor(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	item, _ := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))

	tree.StartAddTopic()
	if tree.Focus().Kind != FocusAddingTopic {
		t.Fatalf("got %v", tree.Focus().Kind)
	}

	if err := tree.StartEditItem(tp.ID, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := tree.Focus()
	if f.Kind != FocusEditingItem || f.TopicID != tp.ID || f.ItemID != item.ID {
		t.Fatalf("editing item focus not exclusive: %+v", f)
	}

	if err := tree.StartAddItem(tp.ID, KindQuiz); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f = tree.Focus()
	if f.Kind != FocusAddingItem || f.ItemID != "" {
		t.Fatalf("prior focus leaked: %+v", f)
	}

	if err := tree.StartEditTopic(tp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Focus().Kind != FocusEditingTopic {
		t.Fatalf("got %v", tree.Focus().Kind)
	}

	tree.ClearFocus()
	if tree.Focus().Kind != FocusNone {
		t.Fatal("clear failed")
	}
}

func TestDuplicateTopicMintsAllNewIDs(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Week 1", "summary")
	tree.SaveItem(tp.ID, lessonPayload("Lesson A"))
	tree.SaveItem(tp.ID, lessonPayload("Lesson B"))

	dup, err := tree.DuplicateTopic(tp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup.Title != "Week 1 (Copy)" {
		t.Fatalf("title: %q", dup.Title)
	}
	if len(dup.Items) != len(tp.Items) {
		t.Fatalf("item count: got %d want %d", len(dup.Items), len(tp.Items))
	}

	used := map[string]bool{tp.ID: true}
	for _, it := range tp.Items {
		used[it.ID] = true
	}
	if used[dup.ID] {
		t.Fatal("duplicate topic id collides")
	}
	for _, it := range dup.Items {
		if used[it.ID] {
			t.Fatalf("duplicate item id %q collides", it.ID)
		}
	}
}

func TestDuplicateTopicIsDeepClone(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Week 1", "")
	payload := lessonPayload("Lesson A")
	payload.Lesson.Files = []FileRef{Uploaded(RemoteFile{Name: "notes.pdf", URL: "https://cdn/notes.pdf"})}
	tree.SaveItem(tp.ID, payload)

	dup, _ := tree.DuplicateTopic(tp.ID)
	dup.Items[0].Lesson.Files[0].Remote.URL = "https://cdn/other.pdf"
	if tp.Items[0].Lesson.Files[0].Remote.URL != "https://cdn/notes.pdf" {
		t.Fatal("duplicate shares file refs with original")
	}
}

func TestDuplicateItem(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	orig, _ := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))

	dup, err := tree.DuplicateItem(tp.ID, orig.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dup.Title != "Lesson A (Copy)" {
		t.Fatalf("title: %q", dup.Title)
	}
	if dup.ID == orig.ID {
		t.Fatal("duplicate kept the original id")
	}
	if tp.Items[len(tp.Items)-1].ID != dup.ID {
		t.Fatal("duplicate must append at the end")
	}
}

func TestDeleteTopicCascades(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	tree.SaveItem(tp.ID, lessonPayload("Lesson A"))
	tree.ToggleExpanded(tp.ID)

	if err := tree.DeleteTopic(tp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Topics()) != 0 {
		t.Fatal("topic not removed")
	}
	if tree.IsExpanded(tp.ID) {
		t.Fatal("expand state should be dropped with the topic")
	}
}

func TestDeleteItemClearsItsOwnFocus(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	item, _ := tree.SaveItem(tp.ID, lessonPayload("Lesson A"))

	tree.StartEditItem(tp.ID, item.ID)
	if err := tree.DeleteItem(tp.ID, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Focus().Kind != FocusNone {
		t.Fatal("cursor should clear when its item is deleted")
	}
	if len(tp.Items) != 0 {
		t.Fatal("item not removed")
	}
}

func TestMoveItemWithinTopic(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	for _, name := range []string{"item0", "item1", "item2", "item3"} {
		tree.SaveItem(tp.ID, lessonPayload(name))
	}

	if err := tree.MoveItem(tp.ID, 2, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"item2", "item0", "item1", "item3"}
	for i, w := range want {
		if tp.Items[i].Title != w {
			t.Fatalf("index %d: got %q want %q", i, tp.Items[i].Title, w)
		}
	}
}

func TestMoveItemSamePositionIsNoop(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")
	tree.SaveItem(tp.ID, lessonPayload("only"))
	if err := tree.MoveItem(tp.ID, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpandIndependentOfFocus(t *testing.T) {
	tree := NewTree(nil)
	tp, _ := tree.AddTopic("Intro", "")

	tree.StartAddItem(tp.ID, KindLesson)
	tree.ToggleExpanded(tp.ID)
	if tree.Focus().Kind != FocusAddingItem {
		t.Fatal("expand toggle must not disturb the cursor")
	}
	if !tree.IsExpanded(tp.ID) {
		t.Fatal("expand state lost")
	}
}

func TestSaveItemUnknownTopic(t *testing.T) {
	tree := NewTree(nil)
	if _, err := tree.SaveItem("missing", lessonPayload("x")); err == nil {
		t.Fatal("expected error")
	}
}
