package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/application/dto/basic"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/questionbank"
	"paper-grade/biz/infrastructure/repository/setting"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"
	"paper-grade/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
)

type ITestService interface {
	CreateTest(ctx context.Context, req *assistant.CreateTestReq) (*assistant.CreateTestResp, error)
	ListTests(ctx context.Context, req *assistant.ListTestsReq) (*assistant.ListTestsResp, error)
	GetTest(ctx context.Context, req *assistant.GetTestReq) (*assistant.GetTestResp, error)
	UpdateTest(ctx context.Context, req *assistant.UpdateTestReq) (*basic.Response, error)
	DeleteTest(ctx context.Context, req *assistant.DeleteTestReq) (*basic.Response, error)
	ExtractRubric(ctx context.Context, req *assistant.ExtractRubricReq) (*assistant.ExtractRubricResp, error)
	ExtractQuestions(ctx context.Context, req *assistant.ExtractQuestionsReq) (*assistant.ExtractQuestionsResp, error)
	ListQuestions(ctx context.Context, req *assistant.ListQuestionsReq) (*assistant.ListQuestionsResp, error)
}

type TestService struct {
	TestMapper       test.IMongoMapper
	SubmissionMapper submission.IMongoMapper
	SettingMapper    setting.IMongoMapper
	QuestionMapper   questionbank.IMapper
	Store            storage.IStore
}

var TestServiceSet = wire.NewSet(
	wire.Struct(new(TestService), "*"),
	wire.Bind(new(ITestService), new(*TestService)),
)

// extractedRubric matches the JSON shape the rubric-extraction prompt asks
// the model to produce.
type extractedRubric struct {
	Rubric []struct {
		ConceptNo   string `mapstructure:"concept_no"`
		Concept     string `mapstructure:"concept"`
		Explanation string `mapstructure:"explanation"`
		Example     string `mapstructure:"example"`
		Status      string `mapstructure:"status"`
	} `mapstructure:"rubric"`
}

// extractedQuestions matches the JSON shape the test-extraction prompt asks
// the model to produce.
type extractedQuestions struct {
	Questions []struct {
		QuestionNo   string `mapstructure:"question_no"`
		QuestionText string `mapstructure:"question_text"`
		Marks        string `mapstructure:"marks"`
		Type         string `mapstructure:"type"`
	} `mapstructure:"questions"`
}

// CreateTest registers a test. A test with the same title on the same date
// is treated as a duplicate.
func (s *TestService) CreateTest(ctx context.Context, req *assistant.CreateTestReq) (*assistant.CreateTestResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, consts.ErrInvalidParams
	}

	if _, err := s.TestMapper.FindByTitleAndDate(ctx, strings.TrimSpace(req.Title), req.Date); err == nil {
		return nil, consts.ErrDuplicateTest
	}

	if req.PaperFileId != "" {
		if _, err := s.Store.FindOne(ctx, req.PaperFileId); err != nil {
			return nil, consts.ErrFileNotFound
		}
	}

	totalMarks := req.TotalMarks
	if totalMarks <= 0 {
		totalMarks = consts.DefaultTotalMarks
	}

	t := &test.Test{
		Title:       strings.TrimSpace(req.Title),
		Subject:     req.Subject,
		Date:        req.Date,
		TotalMarks:  totalMarks,
		Rubric:      req.Rubric,
		PaperFileID: req.PaperFileId,
		CreatorID:   meta.GetUserId(),
	}
	if err := s.TestMapper.Insert(ctx, t); err != nil {
		log.Error("insert test failed: %v", err)
		return nil, consts.ErrCreateTest
	}

	return &assistant.CreateTestResp{TestId: t.ID.Hex()}, nil
}

func (s *TestService) ListTests(ctx context.Context, req *assistant.ListTestsReq) (*assistant.ListTestsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	p, pageSize := page.Parse(req.PaginationOptions)
	tests, total, err := s.TestMapper.FindMany(ctx, req.Search, p, pageSize)
	if err != nil {
		log.Error("list tests failed: %v", err)
		return nil, consts.ErrNotFound
	}

	infos := make([]*assistant.TestInfo, 0, len(tests))
	for _, t := range tests {
		info := &assistant.TestInfo{}
		if err = copier.Copy(info, t); err != nil {
			return nil, err
		}
		info.Id = t.ID.Hex()
		info.PaperFileId = t.PaperFileID
		info.CreateTime = t.CreateTime.Unix()
		infos = append(infos, info)
	}

	return &assistant.ListTestsResp{Tests: infos, Total: total}, nil
}

func (s *TestService) GetTest(ctx context.Context, req *assistant.GetTestReq) (*assistant.GetTestResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	t, err := s.TestMapper.FindOne(ctx, req.TestId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &assistant.GetTestResp{
		Test: &assistant.TestInfo{
			Id:          t.ID.Hex(),
			Title:       t.Title,
			Subject:     t.Subject,
			Date:        t.Date,
			TotalMarks:  t.TotalMarks,
			Rubric:      t.Rubric,
			PaperFileId: t.PaperFileID,
			CreateTime:  t.CreateTime.Unix(),
		},
	}, nil
}

func (s *TestService) UpdateTest(ctx context.Context, req *assistant.UpdateTestReq) (*basic.Response, error) {
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

	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Subject != nil {
		t.Subject = *req.Subject
	}
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			return nil, consts.ErrInvalidParams
		}
		t.Date = *req.Date
	}
	if req.TotalMarks != nil && *req.TotalMarks > 0 {
		t.TotalMarks = *req.TotalMarks
	}
	if req.Rubric != nil {
		t.Rubric = *req.Rubric
	}
	if req.PaperFileId != nil {
		if _, err := s.Store.FindOne(ctx, *req.PaperFileId); err != nil {
			return nil, consts.ErrFileNotFound
		}
		t.PaperFileID = *req.PaperFileId
	}

	if err = s.TestMapper.Update(ctx, t); err != nil {
		return nil, consts.ErrUpdate
	}
	return util.Succeed("test updated")
}

// DeleteTest removes a test that has no submissions. Students are never
// touched.
func (s *TestService) DeleteTest(ctx context.Context, req *assistant.DeleteTestReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if _, err := s.TestMapper.FindOne(ctx, req.TestId); err != nil {
		return nil, consts.ErrNotFound
	}

	count, err := s.SubmissionMapper.CountByTestID(ctx, req.TestId)
	if err != nil {
		return nil, consts.ErrUpdate
	}
	if count > 0 {
		return nil, consts.ErrTestHasSubmissions
	}

	if err = s.TestMapper.Delete(ctx, req.TestId); err != nil {
		return nil, consts.ErrUpdate
	}
	if err = s.QuestionMapper.DeleteForTest(ctx, req.TestId); err != nil {
		log.Error("delete question bank entries failed: %v", err)
	}
	return util.Succeed("test deleted")
}

// ExtractRubric runs the rubric-extraction prompt over an uploaded rubric
// image and stores the readable result as the test's marking rubric.
func (s *TestService) ExtractRubric(ctx context.Context, req *assistant.ExtractRubricReq) (*assistant.ExtractRubricResp, error) {
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

	data, f, err := s.Store.Download(ctx, req.RubricFileId)
	if err != nil {
		return nil, consts.ErrFileNotFound
	}

	prompt := s.SettingMapper.TextOrDefault(ctx, consts.PromptRubricExtraction)
	raw, err := util.GetAIClient().VisionCompletion(ctx, prompt, data, f.Metadata.ContentType, 2000)
	if err != nil {
		log.Error("rubric extraction call failed: %v", err)
		return nil, consts.ErrCall
	}

	parsed, err := parseExtractedRubric(raw)
	if err != nil {
		log.Error("rubric extraction parse failed: %v", err)
		return nil, consts.ErrOCR
	}

	t.Rubric = formatRubricText(parsed)
	if err = s.TestMapper.Update(ctx, t); err != nil {
		log.Error("store extracted rubric failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &assistant.ExtractRubricResp{Rubric: t.Rubric}, nil
}

// ExtractQuestions runs the test-extraction prompt over the question paper
// and refreshes the question bank with the result.
func (s *TestService) ExtractQuestions(ctx context.Context, req *assistant.ExtractQuestionsReq) (*assistant.ExtractQuestionsResp, error) {
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
	if t.PaperFileID == "" {
		return nil, consts.ErrNoQuestionPaper
	}

	data, paper, err := s.Store.Download(ctx, t.PaperFileID)
	if err != nil {
		return nil, consts.ErrFileNotFound
	}

	prompt := s.SettingMapper.TextOrDefault(ctx, consts.PromptTestExtraction)
	raw, err := util.GetAIClient().VisionCompletion(ctx, prompt, data, paper.Metadata.ContentType, 2000)
	if err != nil {
		log.Error("question extraction call failed: %v", err)
		return nil, consts.ErrCall
	}

	parsed, err := parseExtractedQuestions(raw)
	if err != nil {
		log.Error("question extraction parse failed: %v", err)
		return nil, consts.ErrOCR
	}

	questions := make([]*questionbank.Question, 0, len(parsed.Questions))
	infos := make([]*assistant.QuestionInfo, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		questions = append(questions, &questionbank.Question{
			TestID:     req.TestId,
			Subject:    t.Subject,
			QuestionNo: q.QuestionNo,
			Text:       q.QuestionText,
			Marks:      q.Marks,
			Type:       q.Type,
		})
		infos = append(infos, &assistant.QuestionInfo{
			QuestionNo: q.QuestionNo,
			Text:       q.QuestionText,
			Marks:      q.Marks,
			Type:       q.Type,
		})
	}

	if err = s.QuestionMapper.ReplaceForTest(ctx, req.TestId, t.Subject, questions); err != nil {
		log.Error("store extracted questions failed: %v", err)
		return nil, consts.ErrUpdate
	}

	return &assistant.ExtractQuestionsResp{Questions: infos}, nil
}

func (s *TestService) ListQuestions(ctx context.Context, req *assistant.ListQuestionsReq) (*assistant.ListQuestionsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	p, pageSize := page.Parse(req.PaginationOptions)
	questions, total, err := s.QuestionMapper.ListQuestions(ctx, req.TestId, req.Subject, p, pageSize)
	if err != nil {
		log.Error("list questions failed: %v", err)
		return nil, consts.ErrNotFound
	}

	infos := make([]*assistant.QuestionInfo, 0, len(questions))
	for _, q := range questions {
		infos = append(infos, &assistant.QuestionInfo{
			QuestionNo: q.QuestionNo,
			Text:       q.Text,
			Marks:      q.Marks,
			Type:       q.Type,
		})
	}
	return &assistant.ListQuestionsResp{Questions: infos, Total: total}, nil
}

// decodeModelJSON parses model output into result, tolerating a markdown
// fence around the JSON and numeric values where strings are expected.
func decodeModelJSON(raw string, result any) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return err
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(payload)
}

func parseExtractedQuestions(raw string) (*extractedQuestions, error) {
	result := new(extractedQuestions)
	if err := decodeModelJSON(raw, result); err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, errors.New("no questions extracted")
	}
	return result, nil
}

func parseExtractedRubric(raw string) (*extractedRubric, error) {
	result := new(extractedRubric)
	if err := decodeModelJSON(raw, result); err != nil {
		return nil, err
	}
	if len(result.Rubric) == 0 {
		return nil, errors.New("no rubric rows extracted")
	}
	return result, nil
}

// formatRubricText renders the structured rubric as the plain text the
// grading prompt embeds.
func formatRubricText(r *extractedRubric) string {
	var b strings.Builder
	for _, row := range r.Rubric {
		fmt.Fprintf(&b, "%s. %s", row.ConceptNo, row.Concept)
		if row.Explanation != "" {
			fmt.Fprintf(&b, ": %s", row.Explanation)
		}
		if row.Example != "" {
			fmt.Fprintf(&b, " (example: %s)", row.Example)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
