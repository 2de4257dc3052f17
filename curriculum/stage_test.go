package curriculum

import "testing"

func TestStageFlow(t *testing.T) {
	var f StageFlow
	if f.Current() != StageSetup || f.CanSave() {
		t.Fatalf("initial stage: %v", f.Current())
	}
	if !f.Next() || f.Current() != StageContent {
		t.Fatalf("after next: %v", f.Current())
	}
	if !f.CanEditContent() {
		t.Fatal("tree manager should operate during content")
	}
	if !f.Next() || f.Current() != StageReview {
		t.Fatalf("after next: %v", f.Current())
	}
	if !f.CanSave() {
		t.Fatal("save must be reachable from review")
	}
	if f.Next() {
		t.Fatal("advanced past review")
	}
	if !f.Back() || f.Current() != StageContent {
		t.Fatalf("after back: %v", f.Current())
	}
	f.Back()
	if f.Back() {
		t.Fatal("backed past setup")
	}
}
