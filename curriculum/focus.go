package curriculum

// FocusKind enumerates the editing cursor states. At most one inline
// form is open across the whole tree at any time; the cursor is a single
// value owned by the Tree, not per-node flags.
type FocusKind int

const (
	FocusNone FocusKind = iota
	FocusAddingTopic
	FocusEditingTopic
	FocusAddingItem
	FocusEditingItem
)

func (k FocusKind) String() string {
	switch k {
	case FocusAddingTopic:
		return "adding_topic"
	case FocusEditingTopic:
		return "editing_topic"
	case FocusAddingItem:
		return "adding_item"
	case FocusEditingItem:
		return "editing_item"
	}
	return "none"
}

// EditFocus is the single editing cursor. TopicID, ItemID and ItemKind
// are meaningful only for the kinds that carry them.
type EditFocus struct {
	Kind     FocusKind `json:"kind"`
	TopicID  string    `json:"topic_id,omitempty"`
	ItemID   string    `json:"item_id,omitempty"`
	ItemKind ItemKind  `json:"item_kind,omitempty"`
}

func focusNone() EditFocus {
	return EditFocus{Kind: FocusNone}
}
