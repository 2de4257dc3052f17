package curriculum

import "fmt"

// The backend's module/item payload is a versioned contract: modules are
// {title, summary, lessons}, items carry a type discriminant plus their
// variant fields inlined, and media is always a resolved {name,url,...}
// record. Field names on the wire differ from the builder's internal
// names (wire "name"/"about" against internal Title/Description); the
// codec owns that translation in both directions.

// ItemRecord is one item as the backend stores it.
type ItemRecord struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Name string `json:"name"`

	HasUnlockDate bool   `json:"has_unlock_date,omitempty"`
	UnlockDate    string `json:"unlock_date,omitempty"`
	UnlockTime    string `json:"unlock_time,omitempty"`

	// lesson
	About        string         `json:"about,omitempty"`
	VideoURL     string         `json:"video_url,omitempty"`
	VideoName    string         `json:"video_name,omitempty"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Duration     string         `json:"duration,omitempty"`
	Files        []RemoteFile   `json:"files,omitempty"`
	Links        []ExternalLink `json:"links,omitempty"`

	// quiz
	Questions    []Question `json:"questions,omitempty"`
	TimeLimit    int        `json:"time_limit,omitempty"`
	MaxAttempts  int        `json:"max_attempts,omitempty"`
	PassingGrade int        `json:"passing_grade,omitempty"`
	HasCloseDate bool       `json:"has_close_date,omitempty"`
	CloseDate    string     `json:"close_date,omitempty"`
	CloseTime    string     `json:"close_time,omitempty"`

	// assignment
	Content             string       `json:"content,omitempty"`
	Attachments         []RemoteFile `json:"attachments,omitempty"`
	TotalPoints         int          `json:"total_points,omitempty"`
	MinPassPoints       int          `json:"min_pass_points,omitempty"`
	MaxFiles            int          `json:"max_files,omitempty"`
	MaxFileSize         int          `json:"max_file_size,omitempty"`
	ResubmissionAllowed bool         `json:"resubmission_allowed,omitempty"`
	MaxResubmissions    int          `json:"max_resubmissions,omitempty"`

	// live class
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Platform        string `json:"platform,omitempty"`
	MeetingLink     string `json:"meeting_link,omitempty"`
}

// ModuleRecord is one topic as the backend stores it.
type ModuleRecord struct {
	Title   string       `json:"title"`
	Summary string       `json:"summary"`
	Lessons []ItemRecord `json:"lessons"`
}

// CourseSettingsRecord is the course-level slice of the save payload.
type CourseSettingsRecord struct {
	Image       string `json:"image"`
	Video       string `json:"video"`
	Description string `json:"description"`
}

// SavePayload is the single request body the builder-save endpoint
// accepts.
type SavePayload struct {
	Modules        []ModuleRecord       `json:"modules"`
	CourseSettings CourseSettingsRecord `json:"course_settings"`
}

// normalizeKind maps legacy discriminants onto the canonical set. Older
// stored curricula carry a hyphenated live-class tag.
func normalizeKind(t string) ItemKind {
	if t == "live-class" {
		return KindLiveClass
	}
	return ItemKind(t)
}

// DecodeModules translates an already-sorted backend module list into
// builder topics. Items without a stored id get a fresh local one.
func DecodeModules(records []ModuleRecord) ([]*Topic, error) {
	topics := make([]*Topic, 0, len(records))
	for _, rec := range records {
		tp := &Topic{
			ID:      NewID(),
			Title:   rec.Title,
			Summary: rec.Summary,
		}
		for _, ir := range rec.Lessons {
			it, err := decodeItem(ir)
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", rec.Title, err)
			}
			tp.Items = append(tp.Items, it)
		}
		topics = append(topics, tp)
	}
	return topics, nil
}

func decodeItem(rec ItemRecord) (ContentItem, error) {
	kind := normalizeKind(rec.Type)
	if !kind.Valid() {
		return ContentItem{}, fmt.Errorf("%w: %q", ErrUnknownItemKind, rec.Type)
	}
	it := ContentItem{
		ID:    rec.ID,
		Kind:  kind,
		Title: rec.Name,
		UnlockGate: UnlockGate{
			HasUnlockDate: rec.HasUnlockDate,
			UnlockDate:    rec.UnlockDate,
			UnlockTime:    rec.UnlockTime,
		},
	}
	if it.ID == "" {
		it.ID = NewID()
	}

	switch kind {
	case KindLesson:
		l := &LessonContent{
			Description: rec.About,
			Duration:    rec.Duration,
			Links:       rec.Links,
		}
		if rec.VideoURL != "" {
			l.Video = Uploaded(RemoteFile{Name: rec.VideoName, URL: rec.VideoURL})
		}
		if rec.ThumbnailURL != "" {
			l.Cover = Uploaded(RemoteFile{URL: rec.ThumbnailURL})
		}
		for _, f := range rec.Files {
			l.Files = append(l.Files, Uploaded(f))
		}
		it.Lesson = l
	case KindQuiz:
		it.Quiz = &QuizContent{
			Summary:          rec.About,
			Questions:        rec.Questions,
			TimeLimitMinutes: rec.TimeLimit,
			MaxAttempts:      rec.MaxAttempts,
			PassingGrade:     rec.PassingGrade,
			CloseGate: CloseGate{
				HasCloseDate: rec.HasCloseDate,
				CloseDate:    rec.CloseDate,
				CloseTime:    rec.CloseTime,
			},
		}
	case KindAssignment:
		a := &AssignmentContent{
			Body:          rec.Content,
			TotalPoints:   rec.TotalPoints,
			MinPassPoints: rec.MinPassPoints,
			MaxFiles:      rec.MaxFiles,
			MaxFileSizeMB: rec.MaxFileSize,
			Resubmission: ResubmissionPolicy{
				Allowed:     rec.ResubmissionAllowed,
				MaxAttempts: rec.MaxResubmissions,
			},
			CloseGate: CloseGate{
				HasCloseDate: rec.HasCloseDate,
				CloseDate:    rec.CloseDate,
				CloseTime:    rec.CloseTime,
			},
		}
		for _, f := range rec.Attachments {
			a.Attachments = append(a.Attachments, Uploaded(f))
		}
		it.Assignment = a
	case KindLiveClass:
		it.LiveClass = &LiveClassContent{
			Description:     rec.About,
			Date:            rec.Date,
			Time:            rec.Time,
			DurationMinutes: rec.DurationMinutes,
			Platform:        rec.Platform,
			MeetingLink:     rec.MeetingLink,
		}
	}
	return it, nil
}

// EncodeModules reshapes builder topics into the backend payload. Every
// media reference must already be resolved; a surviving local handle is
// an error, never silently dropped.
func EncodeModules(topics []*Topic) ([]ModuleRecord, error) {
	records := make([]ModuleRecord, 0, len(topics))
	for _, tp := range topics {
		rec := ModuleRecord{
			Title:   tp.Title,
			Summary: tp.Summary,
			Lessons: make([]ItemRecord, 0, len(tp.Items)),
		}
		for i := range tp.Items {
			ir, err := encodeItem(&tp.Items[i])
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", tp.Title, err)
			}
			rec.Lessons = append(rec.Lessons, ir)
		}
		records = append(records, rec)
	}
	return records, nil
}

func encodeItem(it *ContentItem) (ItemRecord, error) {
	rec := ItemRecord{
		ID:            it.ID,
		Type:          string(it.Kind),
		Name:          it.Title,
		HasUnlockDate: it.HasUnlockDate,
		UnlockDate:    it.UnlockDate,
		UnlockTime:    it.UnlockTime,
	}

	switch it.Kind {
	case KindLesson:
		l := it.Lesson
		if l == nil {
			return ItemRecord{}, fmt.Errorf("item %q: lesson data missing", it.Title)
		}
		rec.About = l.Description
		rec.Duration = l.Duration
		rec.Links = l.Links
		if !l.Video.IsZero() {
			rf, ok := l.Video.Resolved()
			if !ok {
				return ItemRecord{}, &ErrPendingFile{Asset: fmt.Sprintf("lesson %q video", it.Title)}
			}
			rec.VideoURL = rf.URL
			rec.VideoName = rf.Name
		}
		if !l.Cover.IsZero() {
			rf, ok := l.Cover.Resolved()
			if !ok {
				return ItemRecord{}, &ErrPendingFile{Asset: fmt.Sprintf("lesson %q cover", it.Title)}
			}
			rec.ThumbnailURL = rf.URL
		}
		for _, ref := range l.Files {
			rf, ok := ref.Resolved()
			if !ok {
				return ItemRecord{}, &ErrPendingFile{Asset: fmt.Sprintf("lesson %q file", it.Title)}
			}
			rec.Files = append(rec.Files, rf)
		}
	case KindQuiz:
		q := it.Quiz
		if q == nil {
			return ItemRecord{}, fmt.Errorf("item %q: quiz data missing", it.Title)
		}
		rec.About = q.Summary
		rec.Questions = q.Questions
		rec.TimeLimit = q.TimeLimitMinutes
		rec.MaxAttempts = q.MaxAttempts
		rec.PassingGrade = q.PassingGrade
		rec.HasCloseDate = q.HasCloseDate
		rec.CloseDate = q.CloseDate
		rec.CloseTime = q.CloseTime
	case KindAssignment:
		a := it.Assignment
		if a == nil {
			return ItemRecord{}, fmt.Errorf("item %q: assignment data missing", it.Title)
		}
		rec.Content = a.Body
		rec.TotalPoints = a.TotalPoints
		rec.MinPassPoints = a.MinPassPoints
		rec.MaxFiles = a.MaxFiles
		rec.MaxFileSize = a.MaxFileSizeMB
		rec.ResubmissionAllowed = a.Resubmission.Allowed
		rec.MaxResubmissions = a.Resubmission.MaxAttempts
		rec.HasCloseDate = a.HasCloseDate
		rec.CloseDate = a.CloseDate
		rec.CloseTime = a.CloseTime
		for _, ref := range a.Attachments {
			rf, ok := ref.Resolved()
			if !ok {
				return ItemRecord{}, &ErrPendingFile{Asset: fmt.Sprintf("assignment %q attachment", it.Title)}
			}
			rec.Attachments = append(rec.Attachments, rf)
		}
	case KindLiveClass:
		lc := it.LiveClass
		if lc == nil {
			return ItemRecord{}, fmt.Errorf("item %q: live class data missing", it.Title)
		}
		rec.About = lc.Description
		rec.Date = lc.Date
		rec.Time = lc.Time
		rec.DurationMinutes = lc.DurationMinutes
		rec.Platform = lc.Platform
		rec.MeetingLink = lc.MeetingLink
	default:
		return ItemRecord{}, fmt.Errorf("%w: %q", ErrUnknownItemKind, it.Kind)
	}
	return rec, nil
}
