package service

import (
	"context"
	"fmt"
	"time"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/cache"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/student"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"
	"paper-grade/biz/infrastructure/repository/user"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util/log"
	"paper-grade/biz/infrastructure/util/pdf"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IReportService interface {
	GenerateReport(ctx context.Context, req *assistant.GenerateReportReq) (*assistant.GenerateReportResp, error)
	GenerateClassReport(ctx context.Context, req *assistant.GenerateClassReportReq) (*assistant.GenerateReportResp, error)
}

type ReportService struct {
	SubmissionMapper submission.IMongoMapper
	TestMapper       test.IMongoMapper
	StudentMapper    student.IMongoMapper
	UserMapper       user.IMongoMapper
	Store            storage.IStore
	Cache            cache.IReportCacheMapper
}

var ReportServiceSet = wire.NewSet(
	wire.Struct(new(ReportService), "*"),
	wire.Bind(new(IReportService), new(*ReportService)),
)

// GenerateReport renders the performance report of one graded submission.
// The printed score is the stored score, the report never re-grades.
func (s *ReportService) GenerateReport(ctx context.Context, req *assistant.GenerateReportReq) (*assistant.GenerateReportResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if meta.GetRole() != consts.RoleAdmin {
		u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
		if err != nil || u.StudentID != sub.StudentID {
			return nil, consts.ErrForbidden
		}
	}

	if sub.Status != consts.StatusGraded {
		return nil, consts.ErrNotGraded
	}

	if cached, err := s.Cache.Get(ctx, sub.ID.Hex()); err == nil {
		if _, err = s.Store.FindOne(ctx, cached.FileId); err == nil {
			return cached, nil
		}
	}

	t, err := s.TestMapper.FindOne(ctx, sub.TestID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	st, err := s.StudentMapper.FindOne(ctx, sub.StudentID)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	report := &pdf.IndividualReport{
		StudentName:  st.Name,
		StudentClass: st.ClassName,
		TestTitle:    t.Title,
		Subject:      t.Subject,
		Score:        sub.Score,
		MaxScore:     sub.MaxScore,
		Remarks:      sub.Remarks,
		Strengths:    sub.Strengths,
		Improvements: sub.Improvements,
		GradedAt:     time.Now(),
	}
	if sub.GradeTime != nil {
		report.GradedAt = *sub.GradeTime
	}
	for _, qs := range sub.QuestionScores {
		report.QuestionScores = append(report.QuestionScores, pdf.QuestionRow{
			QuestionNo: qs.QuestionNo,
			Awarded:    qs.Awarded,
			Total:      qs.Total,
		})
	}

	data, err := pdf.BuildIndividualReport(report)
	if err != nil {
		log.Error("build report pdf failed: %v", err)
		return nil, consts.ErrReport
	}

	filename := fmt.Sprintf("report_%s_%s.pdf", st.Name, t.Date)
	fileID, err := s.Store.Upload(ctx, filename, consts.ContentTypePDF, data, false)
	if err != nil {
		log.Error("store report pdf failed: %v", err)
		return nil, consts.ErrStoreFile
	}

	resp := &assistant.GenerateReportResp{FileId: fileID, Filename: filename}
	if err = s.Cache.Set(ctx, sub.ID.Hex(), resp); err != nil {
		log.Error("cache report failed: %v", err)
	}
	return resp, nil
}

// GenerateClassReport renders the aggregate report for one test.
func (s *ReportService) GenerateClassReport(ctx context.Context, req *assistant.GenerateClassReportReq) (*assistant.GenerateReportResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	t, err := s.TestMapper.FindOne(ctx, req.TestId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	subs, err := s.SubmissionMapper.FindAllByTestID(ctx, req.TestId)
	if err != nil {
		log.Error("load submissions for class report failed: %v", err)
		return nil, consts.ErrReport
	}
	graded := lo.Filter(subs, func(sub *submission.Submission, _ int) bool {
		return sub.Status == consts.StatusGraded
	})
	if len(graded) == 0 {
		return nil, consts.ErrNoGradedWork
	}

	if cached, err := s.Cache.Get(ctx, req.TestId); err == nil {
		if _, err = s.Store.FindOne(ctx, cached.FileId); err == nil {
			return cached, nil
		}
	}

	names := make(map[string]string, len(subs))
	for _, sub := range subs {
		if _, ok := names[sub.StudentID]; ok {
			continue
		}
		st, err := s.StudentMapper.FindOne(ctx, sub.StudentID)
		if err != nil {
			names[sub.StudentID] = "Unknown"
			continue
		}
		names[sub.StudentID] = st.Name
	}

	report := BuildClassReportData(t, subs, names)
	data, err := pdf.BuildClassReport(report)
	if err != nil {
		log.Error("build class report pdf failed: %v", err)
		return nil, consts.ErrReport
	}

	filename := fmt.Sprintf("class_report_%s_%s.pdf", t.Subject, t.Date)
	fileID, err := s.Store.Upload(ctx, filename, consts.ContentTypePDF, data, false)
	if err != nil {
		log.Error("store class report pdf failed: %v", err)
		return nil, consts.ErrStoreFile
	}

	resp := &assistant.GenerateReportResp{FileId: fileID, Filename: filename}
	if err = s.Cache.Set(ctx, req.TestId, resp); err != nil {
		log.Error("cache class report failed: %v", err)
	}
	return resp, nil
}

// BuildClassReportData aggregates submissions into the figures printed on
// the class report. Only graded submissions count toward the statistics.
func BuildClassReportData(t *test.Test, subs []*submission.Submission, names map[string]string) *pdf.ClassReport {
	graded := lo.Filter(subs, func(sub *submission.Submission, _ int) bool {
		return sub.Status == consts.StatusGraded
	})

	report := &pdf.ClassReport{
		TestTitle:   t.Title,
		Subject:     t.Subject,
		Submissions: len(subs),
		Graded:      len(graded),
	}

	if len(graded) > 0 {
		scores := lo.Map(graded, func(sub *submission.Submission, _ int) float64 {
			return sub.Score
		})
		report.Average = lo.Sum(scores) / float64(len(scores))
		report.Highest = lo.Max(scores)
		report.Lowest = lo.Min(scores)
		report.Distribution = scoreDistribution(graded, float64(t.TotalMarks))
	}

	for _, sub := range subs {
		name := names[sub.StudentID]
		if name == "" {
			name = "Unknown"
		}
		report.Rows = append(report.Rows, pdf.ClassRow{
			StudentName: name,
			Score:       sub.Score,
			Status:      sub.Status,
		})
	}
	return report
}

// scoreDistribution buckets graded scores by percentage band.
func scoreDistribution(graded []*submission.Submission, totalMarks float64) []pdf.DistributionBucket {
	if totalMarks <= 0 {
		return nil
	}
	buckets := []pdf.DistributionBucket{
		{Label: "0-39%"},
		{Label: "40-59%"},
		{Label: "60-79%"},
		{Label: "80-100%"},
	}
	for _, sub := range graded {
		pct := sub.Score / totalMarks * 100
		switch {
		case pct < 40:
			buckets[0].Count++
		case pct < 60:
			buckets[1].Count++
		case pct < 80:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}
