package services

import (
	stdContext "context"
	"errors"
	"mime/multipart"
	"sync"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/curriculum"
	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/shared"
)

// BuilderService owns the in-memory curriculum editing sessions. One
// session per course; reopening the builder for a course resumes its
// existing session so unsaved work and resolved uploads survive across
// page loads. All tree access is serialized through the session lock.
type BuilderService struct {
	context.DefaultService
	courseSvc *CourseService
	uploadSvc *UploadService
	monSvc    *MonitoringService

	mu       sync.Mutex
	sessions map[string]*builderSession
	byCourse map[string]string
}

type builderSession struct {
	mu       sync.Mutex
	id       string
	courseID string
	flow     curriculum.StageFlow
	tree     *curriculum.Tree
	settings curriculum.CourseSettings
	saving   bool

	// progress has its own lock so the poll endpoint can read it while
	// a save holds the session lock.
	progMu   sync.Mutex
	progress dto.SaveProgressResponse
}

const BUILDER_SVC = "builder_svc"

func (svc BuilderService) Id() string {
	return BUILDER_SVC
}

func (svc *BuilderService) Configure(ctx *context.Context) error {
	svc.sessions = make(map[string]*builderSession)
	svc.byCourse = make(map[string]string)
	return svc.DefaultService.Configure(ctx)
}

func (svc *BuilderService) Start() error {
	svc.courseSvc = svc.Service(COURSE_SVC).(*CourseService)
	svc.uploadSvc = svc.Service(UPLOAD_SVC).(*UploadService)
	svc.monSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// ==================== SESSION LIFECYCLE ====================

// StartSession opens (or resumes) the builder for a course, loading the
// stored curriculum into an editable tree.
func (svc *BuilderService) StartSession(courseID string) (*dto.BuilderSessionResponse, error) {
	svc.mu.Lock()
	if sid, ok := svc.byCourse[courseID]; ok {
		sess := svc.sessions[sid]
		svc.mu.Unlock()
		return svc.snapshot(sess), nil
	}
	svc.mu.Unlock()

	course, err := svc.courseSvc.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	records, err := svc.courseSvc.GetModuleRecords(courseID)
	if err != nil {
		return nil, err
	}

	topics, err := curriculum.DecodeModules(records)
	if err != nil {
		return nil, shared.NewInternalError(err, "Stored curriculum could not be loaded")
	}

	settings := curriculum.CourseSettings{Description: course.Description}
	if course.ImageURL != "" {
		settings.Cover = curriculum.Uploaded(curriculum.RemoteFile{URL: course.ImageURL, Type: "image"})
	}
	if course.VideoURL != "" {
		settings.IntroVideo = curriculum.Uploaded(curriculum.RemoteFile{URL: course.VideoURL, Type: "video"})
	}

	id, _ := uuid.NewV7()
	sess := &builderSession{
		id:       id.String(),
		courseID: courseID,
		tree:     curriculum.NewTree(topics),
		settings: settings,
	}

	svc.mu.Lock()
	svc.sessions[sess.id] = sess
	svc.byCourse[courseID] = sess.id
	svc.monSvc.RecordSessionCount(len(svc.sessions))
	svc.mu.Unlock()

	log.Printf("Opened builder session %s for course %s", sess.id, courseID)
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) GetSession(sessionID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return svc.snapshot(sess), nil
}

// CloseSession discards a session and its unsaved state.
func (svc *BuilderService) CloseSession(sessionID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess, ok := svc.sessions[sessionID]
	if !ok {
		return shared.NewNotFoundError(nil, "Builder session not found")
	}
	delete(svc.sessions, sessionID)
	delete(svc.byCourse, sess.courseID)
	svc.monSvc.RecordSessionCount(len(svc.sessions))
	return nil
}

func (svc *BuilderService) session(sessionID string) (*builderSession, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	sess, ok := svc.sessions[sessionID]
	if !ok {
		return nil, shared.NewNotFoundError(nil, "Builder session not found")
	}
	return sess, nil
}

func (svc *BuilderService) snapshot(sess *builderSession) *dto.BuilderSessionResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// The response is serialized after the session lock is released, so
	// it must not share topic pointers with the live tree.
	live := sess.tree.Topics()
	topics := make([]*curriculum.Topic, len(live))
	expanded := make(map[string]bool, len(live))
	for i, tp := range live {
		topics[i] = tp.Clone()
		expanded[tp.ID] = sess.tree.IsExpanded(tp.ID)
	}

	return &dto.BuilderSessionResponse{
		SessionID: sess.id,
		CourseID:  sess.courseID,
		Stage:     sess.flow.Current().String(),
		Focus:     sess.tree.Focus(),
		Topics:    topics,
		Settings: dto.CourseSettingsResponse{
			Description: sess.settings.Description,
			ImageURL:    sess.settings.Cover.URL(),
			VideoURL:    sess.settings.IntroVideo.URL(),
			ImageStaged: sess.settings.Cover.IsPending(),
			VideoStaged: sess.settings.IntroVideo.IsPending(),
		},
		Expanded: expanded,
		Pending:  sess.tree.PendingUploads(),
	}
}

// ==================== STAGE FLOW ====================

func (svc *BuilderService) NextStage(sessionID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.flow.Next()
	sess.mu.Unlock()
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) BackStage(sessionID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.flow.Back()
	sess.mu.Unlock()
	return svc.snapshot(sess), nil
}

// ==================== COURSE SETTINGS ====================

func (svc *BuilderService) UpdateSettings(sessionID string, req dto.CourseSettingsRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.settings.Description = req.Description
	if req.Image != nil {
		sess.settings.Cover = fileRefFromPayload(req.Image)
	}
	if req.Video != nil {
		sess.settings.IntroVideo = fileRefFromPayload(req.Video)
	}
	sess.mu.Unlock()

	return svc.snapshot(sess), nil
}

// ==================== TOPIC OPERATIONS ====================

func (svc *BuilderService) AddTopic(sessionID string, req dto.TopicRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	_, err = sess.tree.AddTopic(req.Title, req.Summary)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) UpdateTopic(sessionID, topicID string, req dto.TopicRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	err = sess.tree.UpdateTopic(topicID, req.Title, req.Summary)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) DuplicateTopic(sessionID, topicID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	_, err = sess.tree.DuplicateTopic(topicID)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

// DeleteTopic cascades to every item under the topic. The handler has
// already collected the operator's confirmation.
func (svc *BuilderService) DeleteTopic(sessionID, topicID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	err = sess.tree.DeleteTopic(topicID)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) ToggleExpanded(sessionID, topicID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	sess.tree.ToggleExpanded(topicID)
	sess.mu.Unlock()
	return svc.snapshot(sess), nil
}

// ==================== FOCUS ====================

func (svc *BuilderService) SetFocus(sessionID string, req dto.FocusRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	switch req.Kind {
	case "none":
		sess.tree.ClearFocus()
	case "adding_topic":
		sess.tree.StartAddTopic()
	case "editing_topic":
		err = sess.tree.StartEditTopic(req.TopicID)
	case "adding_item":
		err = sess.tree.StartAddItem(req.TopicID, curriculum.ItemKind(req.Item))
	case "editing_item":
		err = sess.tree.StartEditItem(req.TopicID, req.ItemID)
	default:
		err = shared.NewBadRequestError(nil, "Unknown focus kind: "+req.Kind)
	}
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

// ==================== ITEM OPERATIONS ====================

// SaveItem runs the submitted editor payload through the matching form
// and stores the result. Whether it lands as an in-place edit or an
// append is decided by the tree's cursor, not by the request.
func (svc *BuilderService) SaveItem(sessionID, topicID string, req dto.SaveItemRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	item, err := buildItem(req)
	if err != nil {
		return nil, shared.NewBadRequestError(err, err.Error())
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	_, err = sess.tree.SaveItem(topicID, item)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) DuplicateItem(sessionID, topicID, itemID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	_, err = sess.tree.DuplicateItem(topicID, itemID)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

func (svc *BuilderService) DeleteItem(sessionID, topicID, itemID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	err = sess.tree.DeleteItem(topicID, itemID)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

// ReorderItem is the drag-drop path: explicit source and target indexes
// within one topic.
func (svc *BuilderService) ReorderItem(sessionID, topicID string, req dto.ReorderRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	err = sess.tree.MoveItem(topicID, req.From, req.To)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

// MoveItemStep is the keyboard path: nudge one item a single position.
// Funnels into the same reorder the drag path uses.
func (svc *BuilderService) MoveItemStep(sessionID, topicID, itemID string, req dto.MoveStepRequest) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if err := sess.requireContentStage(); err != nil {
		sess.mu.Unlock()
		return nil, err
	}

	tp, err := sess.tree.Topic(topicID)
	if err != nil {
		sess.mu.Unlock()
		return nil, treeError(err)
	}

	from := -1
	for i := range tp.Items {
		if tp.Items[i].ID == itemID {
			from = i
			break
		}
	}
	if from < 0 {
		sess.mu.Unlock()
		return nil, shared.NewNotFoundError(nil, "Item not found")
	}

	to := from + 1
	if req.Direction == "up" {
		to = from - 1
	}
	if to < 0 || to >= len(tp.Items) {
		// Already at the edge; nothing to move.
		sess.mu.Unlock()
		return svc.snapshot(sess), nil
	}

	err = sess.tree.MoveItem(topicID, from, to)
	sess.mu.Unlock()
	if err != nil {
		return nil, treeError(err)
	}
	return svc.snapshot(sess), nil
}

// ==================== ASSET STAGING ====================

// StageAsset buffers a raw attachment for later upload and returns the
// key the editor embeds in its payload.
func (svc *BuilderService) StageAsset(sessionID, kind string, file *multipart.FileHeader) (*dto.StageAssetResponse, error) {
	if _, err := svc.session(sessionID); err != nil {
		return nil, err
	}

	local, err := svc.uploadSvc.Stage(kind, file)
	if err != nil {
		return nil, err
	}

	return &dto.StageAssetResponse{
		Key:  local.Key,
		Name: local.Name,
		Size: local.Size,
		Type: local.Type,
	}, nil
}

func (svc *BuilderService) DiscardAsset(sessionID, key string) error {
	if _, err := svc.session(sessionID); err != nil {
		return err
	}
	svc.uploadSvc.Discard(key)
	return nil
}

// ==================== SAVE ====================

// Save runs the full pipeline: staged uploads first, then one
// persistence request. On failure the session's tree is exactly as the
// operator left it; on a persistence failure the uploads stick so a
// retry skips them.
func (svc *BuilderService) Save(ctx stdContext.Context, sessionID string) (*dto.BuilderSessionResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}

	pendingBefore, err := svc.runSave(ctx, sess)
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok {
			return nil, appErr
		}
		var upErr *curriculum.UploadError
		if errors.As(err, &upErr) {
			svc.monSvc.RecordSave("upload_failed")
			return nil, shared.NewUploadError(err, "Upload failed for "+upErr.Asset)
		}
		var perErr *curriculum.PersistError
		if errors.As(err, &perErr) {
			svc.monSvc.RecordSave("persist_failed")
			// Surface the backend's own message verbatim.
			return nil, shared.NewBadRequestError(err, perErr.Err.Error())
		}
		svc.monSvc.RecordSave("error")
		return nil, shared.NewInternalError(err, "Save failed")
	}

	svc.monSvc.RecordSave("success")
	svc.monSvc.RecordUploads(pendingBefore)

	log.Printf("Saved curriculum for session %s (course %s)", sess.id, sess.courseID)
	return svc.snapshot(sess), nil
}

// runSave holds the session lock for the whole attempt. The pipeline
// calls back into other services, so the lock and the saving flag are
// both released by defer rather than trusting every return path.
func (svc *BuilderService) runSave(ctx stdContext.Context, sess *builderSession) (int, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.flow.CanSave() {
		return 0, shared.NewBadRequestError(nil, "Curriculum can only be saved from the review stage")
	}
	if sess.saving {
		return 0, shared.NewConflictError(nil, "A save is already in progress")
	}
	sess.saving = true
	defer func() { sess.saving = false }()

	pendingBefore := sess.tree.PendingUploads()
	sess.progMu.Lock()
	sess.progress = dto.SaveProgressResponse{Total: pendingBefore}
	sess.progMu.Unlock()

	pipeline := curriculum.NewPipeline(svc.uploadSvc, &coursePersister{svc: svc.courseSvc, courseID: sess.courseID}, func(done, total int, name string) {
		sess.progMu.Lock()
		sess.progress = dto.SaveProgressResponse{Done: done, Total: total, Name: name}
		sess.progMu.Unlock()
	})

	staged := append(sess.settings.PendingKeys(), sess.tree.PendingKeys()...)
	err := pipeline.Save(ctx, sess.tree, &sess.settings)

	// Release the blobs whose resolved references the save adopted.
	// After an upload failure the session keeps every local reference,
	// so every key is still pending and nothing is released; the blobs
	// have to stay staged for the retry to find them.
	after := append(sess.settings.PendingKeys(), sess.tree.PendingKeys()...)
	for _, key := range consumedKeys(staged, after) {
		svc.uploadSvc.Discard(key)
	}

	return pendingBefore, err
}

// Progress reports the save's upload counter for the progress line.
func (svc *BuilderService) Progress(sessionID string) (*dto.SaveProgressResponse, error) {
	sess, err := svc.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.progMu.Lock()
	p := sess.progress
	sess.progMu.Unlock()
	return &p, nil
}

// coursePersister adapts CourseService to the pipeline's persister.
type coursePersister struct {
	svc      *CourseService
	courseID string
}

func (p *coursePersister) SaveCurriculum(_ stdContext.Context, payload curriculum.SavePayload) error {
	return p.svc.SaveCurriculum(p.courseID, payload)
}

// ==================== HELPERS ====================

func (s *builderSession) requireContentStage() error {
	if !s.flow.CanEditContent() {
		return shared.NewBadRequestError(nil, "Curriculum content can only be edited in the content stage")
	}
	return nil
}

// consumedKeys reports the staging keys a save resolved: pending before
// the attempt and no longer pending after it.
func consumedKeys(before, after []string) []string {
	still := make(map[string]bool, len(after))
	for _, k := range after {
		still[k] = true
	}
	var out []string
	for _, k := range before {
		if !still[k] {
			out = append(out, k)
		}
	}
	return out
}

// treeError maps curriculum errors onto transport errors.
func treeError(err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, curriculum.ErrTopicNotFound), errors.Is(err, curriculum.ErrItemNotFound):
		return shared.NewNotFoundError(err, err.Error())
	default:
		return shared.NewBadRequestError(err, err.Error())
	}
}

func fileRefFromPayload(p *dto.FileRefPayload) curriculum.FileRef {
	if p == nil {
		return curriculum.FileRef{}
	}
	if p.Key != "" {
		return curriculum.Staged(curriculum.LocalFile{Key: p.Key, Name: p.Name, Size: p.Size, Type: p.Type})
	}
	if p.URL != "" {
		return curriculum.Uploaded(curriculum.RemoteFile{Name: p.Name, URL: p.URL, Size: p.Size, Type: p.Type})
	}
	return curriculum.FileRef{}
}

// buildItem routes an editor's submit through the matching form so the
// same validation gates the HTTP path and the in-process path.
func buildItem(req dto.SaveItemRequest) (curriculum.ContentItem, error) {
	gate := curriculum.UnlockGate{
		HasUnlockDate: req.HasUnlockDate,
		UnlockDate:    req.UnlockDate,
		UnlockTime:    req.UnlockTime,
	}

	switch curriculum.ItemKind(req.Kind) {
	case curriculum.KindLesson:
		if req.Lesson == nil {
			return curriculum.ContentItem{}, errors.New("lesson payload missing")
		}
		f := curriculum.LessonForm{
			Name:        req.Title,
			Description: req.Lesson.Description,
			Video:       fileRefFromPayload(req.Lesson.Video),
			Cover:       fileRefFromPayload(req.Lesson.Cover),
			Hours:       req.Lesson.Hours,
			Minutes:     req.Lesson.Minutes,
			Seconds:     req.Lesson.Seconds,
			Gate:        gate,
		}
		for i := range req.Lesson.Files {
			f.AddFile(fileRefFromPayload(&req.Lesson.Files[i]))
		}
		for _, l := range req.Lesson.Links {
			f.AddLink(curriculum.ExternalLink{Title: l.Title, URL: l.URL})
		}
		return f.Build()

	case curriculum.KindQuiz:
		if req.Quiz == nil {
			return curriculum.ContentItem{}, errors.New("quiz payload missing")
		}
		f := curriculum.NewQuizForm(nil)
		f.Title = req.Title
		f.Gate = gate
		f.Summary = req.Quiz.Summary
		f.TimeLimitMinutes = req.Quiz.TimeLimit
		f.MaxAttempts = req.Quiz.MaxAttempts
		f.PassingGrade = req.Quiz.PassingGrade
		f.Close = curriculum.CloseGate{
			HasCloseDate: req.Quiz.HasCloseDate,
			CloseDate:    req.Quiz.CloseDate,
			CloseTime:    req.Quiz.CloseTime,
		}
		for _, q := range req.Quiz.Questions {
			if err := f.AddQuestion(curriculum.Question{
				ID:            q.ID,
				Type:          curriculum.QuestionType(q.Type),
				Prompt:        q.Prompt,
				Description:   q.Description,
				CorrectAnswer: q.CorrectAnswer,
				Options:       q.Options,
			}); err != nil {
				return curriculum.ContentItem{}, err
			}
		}
		return f.Build()

	case curriculum.KindAssignment:
		if req.Assignment == nil {
			return curriculum.ContentItem{}, errors.New("assignment payload missing")
		}
		f := curriculum.AssignmentForm{
			Title:         req.Title,
			Body:          req.Assignment.Body,
			Gate:          gate,
			TotalPoints:   req.Assignment.TotalPoints,
			MinPassPoints: req.Assignment.MinPassPoints,
			MaxFiles:      req.Assignment.MaxFiles,
			MaxFileSizeMB: req.Assignment.MaxFileSizeMB,
			Resubmission: curriculum.ResubmissionPolicy{
				Allowed:     req.Assignment.ResubmissionAllowed,
				MaxAttempts: req.Assignment.MaxResubmissions,
			},
			Close: curriculum.CloseGate{
				HasCloseDate: req.Assignment.HasCloseDate,
				CloseDate:    req.Assignment.CloseDate,
				CloseTime:    req.Assignment.CloseTime,
			},
		}
		for i := range req.Assignment.Attachments {
			f.AddAttachment(fileRefFromPayload(&req.Assignment.Attachments[i]))
		}
		return f.Build()

	case curriculum.KindLiveClass:
		if req.LiveClass == nil {
			return curriculum.ContentItem{}, errors.New("live class payload missing")
		}
		f := curriculum.LiveClassForm{
			Title:           req.Title,
			Description:     req.LiveClass.Description,
			Date:            req.LiveClass.Date,
			Time:            req.LiveClass.Time,
			DurationMinutes: req.LiveClass.Duration,
			Platform:        req.LiveClass.Platform,
			MeetingLink:     req.LiveClass.MeetingLink,
			Gate:            gate,
		}
		return f.Build()
	}

	return curriculum.ContentItem{}, curriculum.ErrUnknownItemKind
}
