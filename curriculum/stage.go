package curriculum

// Stage is one of the builder's three linear stages. Transitions only
// change which view renders; no data moves between stages. Save is
// reachable from Review alone.
type Stage int

const (
	StageSetup Stage = iota
	StageContent
	StageReview
)

func (s Stage) String() string {
	switch s {
	case StageContent:
		return "content"
	case StageReview:
		return "review"
	}
	return "setup"
}

// StageFlow tracks the current stage, advanced by explicit next/back.
type StageFlow struct {
	current Stage
}

func (f *StageFlow) Current() Stage { return f.current }

func (f *StageFlow) Next() bool {
	if f.current >= StageReview {
		return false
	}
	f.current++
	return true
}

func (f *StageFlow) Back() bool {
	if f.current <= StageSetup {
		return false
	}
	f.current--
	return true
}

// CanSave reports whether the terminal review stage has been reached.
func (f *StageFlow) CanSave() bool {
	return f.current == StageReview
}

// CanEditContent reports whether the tree manager is operable.
func (f *StageFlow) CanEditContent() bool {
	return f.current == StageContent
}
