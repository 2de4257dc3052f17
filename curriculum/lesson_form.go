package curriculum

import (
	"errors"
	"fmt"
)

// LessonForm holds the local state of the lesson editor. Submit via
// Build; an invalid form never produces an item.
type LessonForm struct {
	Name        string
	Description string
	Video       FileRef
	Cover       FileRef
	Hours       int
	Minutes     int
	Seconds     int
	Files       []FileRef
	Links       []ExternalLink
	Gate        UnlockGate
}

// NewLessonForm prefills the form from an existing lesson item, or
// returns an empty form when starting fresh.
func NewLessonForm(existing *ContentItem) *LessonForm {
	f := &LessonForm{}
	if existing == nil || existing.Lesson == nil {
		return f
	}
	l := existing.Lesson
	f.Name = existing.Title
	f.Gate = existing.UnlockGate
	f.Description = l.Description
	f.Video = l.Video.clone()
	f.Cover = l.Cover.clone()
	f.Hours, f.Minutes, f.Seconds = splitPlayback(l.Duration)
	for _, fr := range l.Files {
		f.Files = append(f.Files, fr.clone())
	}
	f.Links = append(f.Links, l.Links...)
	return f
}

// SetVideo replaces any prior video selection. A library pick arrives
// already resolved; a raw attachment arrives as a staged local file.
func (f *LessonForm) SetVideo(ref FileRef) {
	f.Video = ref
}

// RemoveVideo clears the video and its cover together.
func (f *LessonForm) RemoveVideo() {
	f.Video = FileRef{}
	f.Cover = FileRef{}
}

func (f *LessonForm) SetCover(ref FileRef) {
	f.Cover = ref
}

func (f *LessonForm) AddFile(ref FileRef) {
	f.Files = append(f.Files, ref)
}

func (f *LessonForm) AddLink(link ExternalLink) {
	f.Links = append(f.Links, link)
}

func (f *LessonForm) Validate() error {
	if f.Name == "" {
		return ErrEmptyTitle
	}
	if f.Hours < 0 || f.Minutes < 0 || f.Minutes > 59 || f.Seconds < 0 || f.Seconds > 59 {
		return errors.New("playback time out of range")
	}
	return nil
}

// Build assembles the lesson payload. Playback fields collapse into a
// single zero-padded HH:MM:SS string at submit time.
func (f *LessonForm) Build() (ContentItem, error) {
	if err := f.Validate(); err != nil {
		return ContentItem{}, err
	}
	return ContentItem{
		Kind:       KindLesson,
		Title:      f.Name,
		UnlockGate: f.Gate,
		Lesson: &LessonContent{
			Description: f.Description,
			Video:       f.Video,
			Cover:       f.Cover,
			Duration:    fmt.Sprintf("%02d:%02d:%02d", f.Hours, f.Minutes, f.Seconds),
			Files:       f.Files,
			Links:       f.Links,
		},
	}, nil
}

func splitPlayback(s string) (h, m, sec int) {
	fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec)
	return
}
