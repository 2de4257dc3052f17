package curriculum

import "errors"

var ErrMissingMeetingLink = errors.New("live class requires a meeting link")

// LiveClassForm holds the live class editor's state. Link generation for
// google_meet is an external collaborator; the form only gates its save
// on a link being present, however it was obtained.
type LiveClassForm struct {
	Title           string
	Description     string
	Date            string
	Time            string
	DurationMinutes int
	Platform        string
	MeetingLink     string
	Gate            UnlockGate
}

func NewLiveClassForm(existing *ContentItem) *LiveClassForm {
	f := &LiveClassForm{
		Platform:        PlatformGoogleMeet,
		DurationMinutes: 60,
	}
	if existing == nil || existing.LiveClass == nil {
		return f
	}
	lc := existing.LiveClass
	f.Title = existing.Title
	f.Gate = existing.UnlockGate
	f.Description = lc.Description
	f.Date = lc.Date
	f.Time = lc.Time
	f.DurationMinutes = lc.DurationMinutes
	f.Platform = lc.Platform
	f.MeetingLink = lc.MeetingLink
	return f
}

func (f *LiveClassForm) Validate() error {
	if f.Title == "" {
		return ErrEmptyTitle
	}
	if f.Date == "" || f.Time == "" {
		return errors.New("live class requires a date and time")
	}
	if f.MeetingLink == "" {
		return ErrMissingMeetingLink
	}
	switch f.Platform {
	case PlatformGoogleMeet, PlatformZoom, PlatformOther:
	default:
		return errors.New("unknown meeting platform")
	}
	return nil
}

func (f *LiveClassForm) Build() (ContentItem, error) {
	if err := f.Validate(); err != nil {
		return ContentItem{}, err
	}
	return ContentItem{
		Kind:       KindLiveClass,
		Title:      f.Title,
		UnlockGate: f.Gate,
		LiveClass: &LiveClassContent{
			Description:     f.Description,
			Date:            f.Date,
			Time:            f.Time,
			DurationMinutes: f.DurationMinutes,
			Platform:        f.Platform,
			MeetingLink:     f.MeetingLink,
		},
	}, nil
}
