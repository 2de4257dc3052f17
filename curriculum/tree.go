package curriculum

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrUnknownItemKind = errors.New("unknown item kind")
	ErrKindMismatch    = errors.New("item kind cannot change")
)

// NewID mints a collision-safe, time-ordered identifier for topics and
// items. Timestamp-only schemes collide under rapid successive creates.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Tree owns the full topic list for one editing session, routes every
// mutation to the right topic and enforces the single-active-editor
// cursor. It is single-owner and not safe for concurrent use; the
// builder session serializes access to it.
type Tree struct {
	topics   []*Topic
	focus    EditFocus
	expanded map[string]bool
	newID    func() string
}

// NewTree builds a tree around an already-translated topic list. The
// tree takes ownership of the slice.
func NewTree(topics []*Topic) *Tree {
	return &Tree{
		topics:   topics,
		focus:    focusNone(),
		expanded: make(map[string]bool),
		newID:    NewID,
	}
}

func (t *Tree) Topics() []*Topic { return t.topics }

func (t *Tree) Topic(id string) (*Topic, error) {
	for _, tp := range t.topics {
		if tp.ID == id {
			return tp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, id)
}

func (t *Tree) Item(topicID, itemID string) (*ContentItem, error) {
	tp, err := t.Topic(topicID)
	if err != nil {
		return nil, err
	}
	idx := tp.itemIndex(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return &tp.Items[idx], nil
}

// ==================== FOCUS ====================

// Focus returns the current editing cursor.
func (t *Tree) Focus() EditFocus { return t.focus }

// setFocus is the single transition every focus change goes through.
// Setting any state clears whatever was active before.
func (t *Tree) setFocus(f EditFocus) {
	t.focus = f
}

func (t *Tree) ClearFocus() { t.setFocus(focusNone()) }

func (t *Tree) StartAddTopic() {
	t.setFocus(EditFocus{Kind: FocusAddingTopic})
}

func (t *Tree) StartEditTopic(topicID string) error {
	if _, err := t.Topic(topicID); err != nil {
		return err
	}
	t.setFocus(EditFocus{Kind: FocusEditingTopic, TopicID: topicID})
	return nil
}

func (t *Tree) StartAddItem(topicID string, kind ItemKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownItemKind, kind)
	}
	if _, err := t.Topic(topicID); err != nil {
		return err
	}
	t.setFocus(EditFocus{Kind: FocusAddingItem, TopicID: topicID, ItemKind: kind})
	return nil
}

func (t *Tree) StartEditItem(topicID, itemID string) error {
	it, err := t.Item(topicID, itemID)
	if err != nil {
		return err
	}
	t.setFocus(EditFocus{Kind: FocusEditingItem, TopicID: topicID, ItemID: itemID, ItemKind: it.Kind})
	return nil
}

// ==================== TOPICS ====================

// AddTopic appends a topic with a fresh id. Blocked on empty title.
func (t *Tree) AddTopic(title, summary string) (*Topic, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	tp := &Topic{ID: t.newID(), Title: title, Summary: summary}
	t.topics = append(t.topics, tp)
	t.ClearFocus()
	return tp, nil
}

// UpdateTopic replaces a topic's title and summary in place.
func (t *Tree) UpdateTopic(topicID, title, summary string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	tp, err := t.Topic(topicID)
	if err != nil {
		return err
	}
	tp.Title = title
	tp.Summary = summary
	t.ClearFocus()
	return nil
}

// DuplicateTopic deep-clones the topic with fresh topic and item ids and
// appends the clone after the existing topics.
func (t *Tree) DuplicateTopic(topicID string) (*Topic, error) {
	tp, err := t.Topic(topicID)
	if err != nil {
		return nil, err
	}
	dup := tp.Duplicate(t.newID)
	t.topics = append(t.topics, dup)
	return dup, nil
}

// DeleteTopic removes the topic and every item under it. Confirmation
// is the caller's concern; once invoked the cascade is unconditional.
func (t *Tree) DeleteTopic(topicID string) error {
	for i, tp := range t.topics {
		if tp.ID == topicID {
			t.topics = append(t.topics[:i], t.topics[i+1:]...)
			delete(t.expanded, topicID)
			if t.focus.TopicID == topicID {
				t.ClearFocus()
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTopicNotFound, topicID)
}

// ==================== ITEMS ====================

// SaveItem stores an editor's payload. When the cursor is editing-item
// for the same topic, the targeted item is replaced in place with its id
// preserved; a payload whose kind differs from the item under edit is
// rejected, since the variant data would no longer match the
// discriminant. Otherwise the payload is appended at the end with a
// fresh id. Field validation happened in the editor; the tree only
// guards its own structural invariants. The cursor is cleared either
// way.
func (t *Tree) SaveItem(topicID string, payload ContentItem) (*ContentItem, error) {
	tp, err := t.Topic(topicID)
	if err != nil {
		return nil, err
	}

	if t.focus.Kind == FocusEditingItem && t.focus.TopicID == topicID {
		idx := tp.itemIndex(t.focus.ItemID)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, t.focus.ItemID)
		}
		if payload.Kind != tp.Items[idx].Kind {
			return nil, fmt.Errorf("%w: %q is a %s, got %s", ErrKindMismatch, tp.Items[idx].Title, tp.Items[idx].Kind, payload.Kind)
		}
		payload.ID = tp.Items[idx].ID
		tp.Items[idx] = payload
		t.ClearFocus()
		return &tp.Items[idx], nil
	}

	if !payload.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemKind, payload.Kind)
	}
	payload.ID = t.newID()
	tp.Items = append(tp.Items, payload)
	t.ClearFocus()
	return &tp.Items[len(tp.Items)-1], nil
}

// DuplicateItem clones the item with a new id and a " (Copy)" title,
// appended at the end of the same topic's list.
func (t *Tree) DuplicateItem(topicID, itemID string) (*ContentItem, error) {
	tp, err := t.Topic(topicID)
	if err != nil {
		return nil, err
	}
	idx := tp.itemIndex(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	dup := tp.Items[idx].Clone()
	dup.ID = t.newID()
	dup.Title = tp.Items[idx].Title + " (Copy)"
	tp.Items = append(tp.Items, dup)
	return &tp.Items[len(tp.Items)-1], nil
}

// DeleteItem removes the item by id. Confirmation is the caller's
// concern; cancelled confirmations never reach the tree.
func (t *Tree) DeleteItem(topicID, itemID string) error {
	tp, err := t.Topic(topicID)
	if err != nil {
		return err
	}
	idx := tp.itemIndex(itemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	tp.Items = append(tp.Items[:idx], tp.Items[idx+1:]...)
	if t.focus.Kind == FocusEditingItem && t.focus.ItemID == itemID {
		t.ClearFocus()
	}
	return nil
}

// MoveItem reorders within one topic. Cross-topic moves are not
// supported. No-op when from equals to.
func (t *Tree) MoveItem(topicID string, from, to int) error {
	tp, err := t.Topic(topicID)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	moved, err := Move(tp.Items, from, to)
	if err != nil {
		return err
	}
	tp.Items = moved
	return nil
}

// ==================== VIEW STATE ====================

// ToggleExpanded flips a topic's expand state. Independent of the edit
// cursor; toggling never cancels an open editor.
func (t *Tree) ToggleExpanded(topicID string) {
	t.expanded[topicID] = !t.expanded[topicID]
}

func (t *Tree) IsExpanded(topicID string) bool {
	return t.expanded[topicID]
}

// PendingUploads counts every staged local file across the tree, in
// walk order. Drives the "uploading X of Y" progress line.
func (t *Tree) PendingUploads() int {
	return len(t.PendingKeys())
}

// PendingKeys lists the staging keys of every unresolved file in the
// tree, in walk order. The session uses it to release staged blobs once
// a save has adopted their resolved references.
func (t *Tree) PendingKeys() []string {
	var keys []string
	for _, tp := range t.topics {
		for i := range tp.Items {
			for _, ref := range tp.Items[i].pendingFiles() {
				keys = append(keys, ref.Local.Key)
			}
		}
	}
	return keys
}
