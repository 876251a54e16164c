package service

import (
	"context"
	"time"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/application/dto/basic"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"
	"paper-grade/biz/infrastructure/repository/user"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"
	"paper-grade/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type ISubmissionService interface {
	CreateSubmission(ctx context.Context, req *assistant.CreateSubmissionReq) (*assistant.CreateSubmissionResp, error)
	ListSubmissionsByTest(ctx context.Context, req *assistant.ListSubmissionsByTestReq) (*assistant.ListSubmissionsResp, error)
	ListSubmissionsByStudent(ctx context.Context, req *assistant.ListSubmissionsByStudentReq) (*assistant.ListSubmissionsResp, error)
	GetSubmission(ctx context.Context, req *assistant.GetSubmissionReq) (*assistant.GetSubmissionResp, error)
	DeleteSubmission(ctx context.Context, req *assistant.DeleteSubmissionReq) (*basic.Response, error)
	RetryGrading(ctx context.Context, req *assistant.RetryGradingReq) (*basic.Response, error)
}

type SubmissionService struct {
	SubmissionMapper submission.IMongoMapper
	TestMapper       test.IMongoMapper
	UserMapper       user.IMongoMapper
	Store            storage.IStore
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// CreateSubmission files an answer sheet for the calling student. A student
// hands in at most one sheet per test, and grading happens asynchronously.
func (s *SubmissionService) CreateSubmission(ctx context.Context, req *assistant.CreateSubmissionReq) (*assistant.CreateSubmissionResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	studentID, err := s.callerStudentID(ctx, meta)
	if err != nil {
		return nil, err
	}

	t, err := s.TestMapper.FindOne(ctx, req.TestId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if _, err = s.Store.FindOne(ctx, req.AnswerFileId); err != nil {
		return nil, consts.ErrFileNotFound
	}
	if _, err = s.SubmissionMapper.FindByTestAndStudent(ctx, req.TestId, studentID); err == nil {
		return nil, consts.ErrDuplicateSubmission
	}

	sub := &submission.Submission{
		TestID:       req.TestId,
		StudentID:    studentID,
		AnswerFileID: req.AnswerFileId,
		Status:       consts.StatusSubmitted,
		MaxScore:     float64(t.TotalMarks),
		SubmitTime:   time.Now(),
	}
	if err = s.SubmissionMapper.Insert(ctx, sub); err != nil {
		log.Error("insert submission failed: %v", err)
		return nil, consts.ErrSubmit
	}

	return &assistant.CreateSubmissionResp{SubmissionId: sub.ID.Hex()}, nil
}

func (s *SubmissionService) ListSubmissionsByTest(ctx context.Context, req *assistant.ListSubmissionsByTestReq) (*assistant.ListSubmissionsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	p, pageSize := page.Parse(req.PaginationOptions)
	subs, total, err := s.SubmissionMapper.FindByTestID(ctx, req.TestId, p, pageSize)
	if err != nil {
		log.Error("list submissions failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return &assistant.ListSubmissionsResp{Submissions: toSubmissionInfos(subs), Total: total}, nil
}

// ListSubmissionsByStudent returns a student's own submissions. Admins may
// query any student by id.
func (s *SubmissionService) ListSubmissionsByStudent(ctx context.Context, req *assistant.ListSubmissionsByStudentReq) (*assistant.ListSubmissionsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	studentID := req.StudentId
	if meta.GetRole() != consts.RoleAdmin {
		own, err := s.callerStudentID(ctx, meta)
		if err != nil {
			return nil, err
		}
		studentID = own
	}
	if studentID == "" {
		return nil, consts.ErrInvalidParams
	}

	p, pageSize := page.Parse(req.PaginationOptions)
	subs, total, err := s.SubmissionMapper.FindByStudentID(ctx, studentID, p, pageSize)
	if err != nil {
		log.Error("list submissions failed: %v", err)
		return nil, consts.ErrNotFound
	}
	return &assistant.ListSubmissionsResp{Submissions: toSubmissionInfos(subs), Total: total}, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, req *assistant.GetSubmissionReq) (*assistant.GetSubmissionResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if meta.GetRole() != consts.RoleAdmin {
		own, err := s.callerStudentID(ctx, meta)
		if err != nil || own != sub.StudentID {
			return nil, consts.ErrForbidden
		}
	}

	return &assistant.GetSubmissionResp{Submission: toSubmissionInfo(sub)}, nil
}

func (s *SubmissionService) DeleteSubmission(ctx context.Context, req *assistant.DeleteSubmissionReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if err = s.SubmissionMapper.Delete(ctx, req.SubmissionId); err != nil {
		return nil, consts.ErrUpdate
	}
	if sub.AnswerFileID != "" {
		if err = s.Store.Delete(ctx, sub.AnswerFileID); err != nil {
			log.Error("delete answer file %s failed: %v", sub.AnswerFileID, err)
		}
	}
	return util.Succeed("submission deleted")
}

// RetryGrading puts a failed submission back in the queue.
func (s *SubmissionService) RetryGrading(ctx context.Context, req *assistant.RetryGradingReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if sub.Status == consts.StatusGrading {
		return nil, consts.ErrGradingInProgress
	}
	if sub.Status == consts.StatusGraded {
		return nil, consts.ErrUpdate
	}

	sub.Status = consts.StatusSubmitted
	sub.Message = ""
	if err = s.SubmissionMapper.Update(ctx, sub); err != nil {
		return nil, consts.ErrUpdate
	}
	return util.Succeed("submission queued for grading")
}

// callerStudentID resolves the roster entry linked to a student account.
func (s *SubmissionService) callerStudentID(ctx context.Context, meta *basic.UserMeta) (string, error) {
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return "", consts.ErrNotAuthentication
	}
	if u.StudentID == "" {
		return "", consts.ErrForbidden
	}
	return u.StudentID, nil
}

func toSubmissionInfo(sub *submission.Submission) *assistant.SubmissionInfo {
	info := &assistant.SubmissionInfo{
		Id:           sub.ID.Hex(),
		TestId:       sub.TestID,
		StudentId:    sub.StudentID,
		AnswerFileId: sub.AnswerFileID,
		Status:       sub.Status,
		Score:        sub.Score,
		MaxScore:     sub.MaxScore,
		Remarks:      sub.Remarks,
		Strengths:    sub.Strengths,
		Improvements: sub.Improvements,
		Message:      sub.Message,
		SubmitTime:   sub.SubmitTime.Unix(),
	}
	if sub.GradeTime != nil {
		info.GradeTime = sub.GradeTime.Unix()
	}
	for _, qs := range sub.QuestionScores {
		info.QuestionScores = append(info.QuestionScores, &assistant.QuestionScoreInfo{
			QuestionNo: qs.QuestionNo,
			Awarded:    qs.Awarded,
			Total:      qs.Total,
		})
	}
	return info
}

func toSubmissionInfos(subs []*submission.Submission) []*assistant.SubmissionInfo {
	infos := make([]*assistant.SubmissionInfo, 0, len(subs))
	for _, sub := range subs {
		infos = append(infos, toSubmissionInfo(sub))
	}
	return infos
}
