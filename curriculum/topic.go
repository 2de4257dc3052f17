package curriculum

// Topic is one section of a course: a title, a summary and an ordered
// list of heterogeneous content items. Item order is delivery order.
type Topic struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Summary string        `json:"summary"`
	Items   []ContentItem `json:"items"`
}

// Clone deep-copies the topic, keeping every id.
func (t *Topic) Clone() *Topic {
	out := &Topic{ID: t.ID, Title: t.Title, Summary: t.Summary}
	if t.Items != nil {
		out.Items = make([]ContentItem, len(t.Items))
		for i, it := range t.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// Duplicate deep-clones the topic with freshly minted topic and item ids
// and a " (Copy)" title suffix.
func (t *Topic) Duplicate(newID func() string) *Topic {
	out := t.Clone()
	out.ID = newID()
	out.Title = t.Title + " (Copy)"
	for i := range out.Items {
		out.Items[i].ID = newID()
	}
	return out
}

func (t *Topic) itemIndex(itemID string) int {
	for i := range t.Items {
		if t.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
