package curriculum

import "errors"

// AssignmentTab enumerates the assignment editor's three tabs. Each tab
// keeps its own state; Build gathers all three regardless of which tab
// is visible when the operator saves.
type AssignmentTab int

const (
	AssignmentTabInfo AssignmentTab = iota
	AssignmentTabAttachments
	AssignmentTabSettings
)

// AssignmentForm holds the assignment editor's state.
type AssignmentForm struct {
	tab AssignmentTab

	Title string
	Body  string
	Gate  UnlockGate

	Attachments []FileRef

	TotalPoints   int
	MinPassPoints int
	MaxFiles      int
	MaxFileSizeMB int
	Resubmission  ResubmissionPolicy
	Close         CloseGate
}

func NewAssignmentForm(existing *ContentItem) *AssignmentForm {
	f := &AssignmentForm{
		TotalPoints:   100,
		MinPassPoints: 50,
		MaxFiles:      1,
		MaxFileSizeMB: 10,
	}
	if existing == nil || existing.Assignment == nil {
		return f
	}
	a := existing.Assignment
	f.Title = existing.Title
	f.Gate = existing.UnlockGate
	f.Body = a.Body
	for _, ref := range a.Attachments {
		f.Attachments = append(f.Attachments, ref.clone())
	}
	f.TotalPoints = a.TotalPoints
	f.MinPassPoints = a.MinPassPoints
	f.MaxFiles = a.MaxFiles
	f.MaxFileSizeMB = a.MaxFileSizeMB
	f.Resubmission = a.Resubmission
	f.Close = a.CloseGate
	return f
}

func (f *AssignmentForm) Tab() AssignmentTab        { return f.tab }
func (f *AssignmentForm) SwitchTab(t AssignmentTab) { f.tab = t }

func (f *AssignmentForm) AddAttachment(ref FileRef) {
	f.Attachments = append(f.Attachments, ref)
}

func (f *AssignmentForm) RemoveAttachment(i int) {
	if i < 0 || i >= len(f.Attachments) {
		return
	}
	f.Attachments = append(f.Attachments[:i], f.Attachments[i+1:]...)
}

// Validate gates the save button: title required, minimum passing
// points bounded by the total. The bound is a form-level check only;
// the data model does not re-enforce it.
func (f *AssignmentForm) Validate() error {
	if f.Title == "" {
		return ErrEmptyTitle
	}
	if f.MinPassPoints > f.TotalPoints {
		return errors.New("minimum passing points cannot exceed total points")
	}
	return nil
}

// Build gathers state from all three tabs into the assignment payload.
func (f *AssignmentForm) Build() (ContentItem, error) {
	if err := f.Validate(); err != nil {
		return ContentItem{}, err
	}
	return ContentItem{
		Kind:       KindAssignment,
		Title:      f.Title,
		UnlockGate: f.Gate,
		Assignment: &AssignmentContent{
			Body:          f.Body,
			Attachments:   f.Attachments,
			TotalPoints:   f.TotalPoints,
			MinPassPoints: f.MinPassPoints,
			MaxFiles:      f.MaxFiles,
			MaxFileSizeMB: f.MaxFileSizeMB,
			Resubmission:  f.Resubmission,
			CloseGate:     f.Close,
		},
	}, nil
}
