package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paper-grade/biz/infrastructure/cache"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/lock"
	"paper-grade/biz/infrastructure/repository/questionbank"
	"paper-grade/biz/infrastructure/repository/setting"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

const (
	graderInterval  = 30 * time.Second
	ocrMaxTokens    = 3000
	gradeMaxTokens  = 2000
	gradeLockTTLSec = consts.GradingTimeoutMin * 60
)

// GradeResult is the structured outcome parsed from a grading response.
type GradeResult struct {
	Score          float64
	MaxScore       float64
	QuestionScores []submission.QuestionScore
	Remarks        string
	Strengths      string
	Improvements   string
}

type GradingService struct {
	SubmissionMapper submission.IMongoMapper
	TestMapper       test.IMongoMapper
	SettingMapper    setting.IMongoMapper
	QuestionMapper   questionbank.IMapper
	Store            storage.IStore
	ReportCache      cache.IReportCacheMapper
	Locks            lock.Factory
}

var GradingServiceSet = wire.NewSet(
	wire.Struct(new(GradingService), "*"),
)

// StartGrader runs the background grading loop until the context is
// cancelled. Every tick it resets stuck work and grades whatever is queued.
func (s *GradingService) StartGrader(ctx context.Context) {
	ticker := time.NewTicker(graderInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.resetStuck(ctx)
			s.processPending(ctx)
		}
	}
}

func (s *GradingService) processPending(ctx context.Context) {
	subs, err := s.SubmissionMapper.FindByStatus(ctx, consts.StatusSubmitted)
	if err != nil {
		log.Error("load pending submissions failed: %v", err)
		return
	}
	for _, sub := range subs {
		s.processOne(ctx, sub)
	}
}

// resetStuck requeues submissions stuck in grading, usually left behind by a
// crashed run.
func (s *GradingService) resetStuck(ctx context.Context) {
	cutoff := time.Now().Add(-consts.GradingTimeoutMin * time.Minute)
	stuck, err := s.SubmissionMapper.FindStuck(ctx, cutoff)
	if err != nil {
		log.Error("find stuck submissions failed: %v", err)
		return
	}
	for _, sub := range stuck {
		log.Info("resetting stuck submission %s", sub.ID.Hex())
		sub.Status = consts.StatusSubmitted
		if err = s.SubmissionMapper.Update(ctx, sub); err != nil {
			log.Error("reset stuck submission %s failed: %v", sub.ID.Hex(), err)
		}
	}
}

// processOne claims a single submission behind a redis lock and grades it.
// Grading happens exactly once per submission, a graded record is never
// touched again.
func (s *GradingService) processOne(ctx context.Context, sub *submission.Submission) {
	mutex := s.Locks.NewGradeMutex(ctx, sub.ID.Hex(), gradeLockTTLSec)
	if err := mutex.Lock(); err != nil {
		return
	}
	defer func() {
		if err := mutex.Unlock(); err != nil {
			log.Error("release grade lock failed: %v", err)
		}
	}()

	// re-read under the lock, another instance may have claimed it
	fresh, err := s.SubmissionMapper.FindOne(ctx, sub.ID.Hex())
	if err != nil || fresh.Status != consts.StatusSubmitted {
		return
	}

	fresh.Status = consts.StatusGrading
	if err = s.SubmissionMapper.Update(ctx, fresh); err != nil {
		log.Error("claim submission %s failed: %v", fresh.ID.Hex(), err)
		return
	}

	result, err := s.grade(ctx, fresh)
	if err != nil {
		s.markFailed(ctx, fresh, err)
		return
	}

	// if the lock lapsed mid-run another instance may have finished this
	// submission already, and a stored grade is never overwritten
	if mutex.Expired() {
		cur, err := s.SubmissionMapper.FindOne(ctx, fresh.ID.Hex())
		if err == nil && cur.Status == consts.StatusGraded {
			return
		}
	}

	now := time.Now()
	fresh.Status = consts.StatusGraded
	fresh.Score = result.Score
	fresh.MaxScore = result.MaxScore
	fresh.QuestionScores = result.QuestionScores
	fresh.Remarks = result.Remarks
	fresh.Strengths = result.Strengths
	fresh.Improvements = result.Improvements
	fresh.Message = ""
	fresh.GradeTime = &now
	if err = s.SubmissionMapper.Update(ctx, fresh); err != nil {
		log.Error("store grade for %s failed: %v", fresh.ID.Hex(), err)
		return
	}
	log.Info("graded submission %s: %.1f/%.1f", fresh.ID.Hex(), result.Score, result.MaxScore)

	s.invalidateReports(ctx, fresh)
}

// grade runs OCR over the answer sheet and asks the model to mark it,
// retrying transient failures with exponential backoff.
func (s *GradingService) grade(ctx context.Context, sub *submission.Submission) (*GradeResult, error) {
	t, err := s.TestMapper.FindOne(ctx, sub.TestID)
	if err != nil {
		return nil, fmt.Errorf("test %s not found: %w", sub.TestID, err)
	}

	answer, answerMeta, err := s.Store.Download(ctx, sub.AnswerFileID)
	if err != nil {
		return nil, fmt.Errorf("answer file %s not found: %w", sub.AnswerFileID, err)
	}

	ocrPrompt := s.SettingMapper.TextOrDefault(ctx, consts.PromptOCR)
	answerText, err := s.withRetry(ctx, func() (string, error) {
		return util.GetAIClient().VisionCompletion(ctx, ocrPrompt, answer, answerMeta.Metadata.ContentType, ocrMaxTokens)
	})
	if err != nil {
		return nil, fmt.Errorf("answer sheet OCR failed: %w", err)
	}

	questions, _, err := s.QuestionMapper.ListQuestions(ctx, sub.TestID, "", 1, 200)
	if err != nil {
		log.Error("load question bank for %s failed: %v", sub.TestID, err)
	}

	gradingPrompt := s.SettingMapper.TextOrDefault(ctx, consts.PromptGrading)
	prompt := BuildGradingPrompt(gradingPrompt, t, questions, answerText)

	raw, err := s.withRetry(ctx, func() (string, error) {
		return util.GetAIClient().ChatCompletion(ctx, prompt, gradeMaxTokens, config.GetConfig().AI.Temperature)
	})
	if err != nil {
		return nil, fmt.Errorf("grading call failed: %w", err)
	}

	result, err := ParseGradingResponse(raw, float64(t.TotalMarks))
	if err != nil {
		return nil, fmt.Errorf("grading response unusable: %w", err)
	}
	return result, nil
}

// withRetry runs fn up to the attempt limit with exponential backoff.
func (s *GradingService) withRetry(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	backoff := time.Second
	for attempt := 1; attempt <= consts.GradingMaxAttempts; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		log.Error("AI call attempt %d/%d failed: %v", attempt, consts.GradingMaxAttempts, err)
		if attempt < consts.GradingMaxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return "", lastErr
}

// markFailed records the failure. The stored message is the generic
// grading-unavailable text, the raw cause stays in the logs only.
func (s *GradingService) markFailed(ctx context.Context, sub *submission.Submission, cause error) {
	log.Error("grading submission %s failed: %v", sub.ID.Hex(), cause)
	sub.Status = consts.StatusFailed
	sub.Message = consts.ErrGradingUnavailable.Error()
	if err := s.SubmissionMapper.Update(ctx, sub); err != nil {
		log.Error("mark submission %s failed errored: %v", sub.ID.Hex(), err)
	}
}

// invalidateReports drops cached report file ids that a fresh grade makes
// stale.
func (s *GradingService) invalidateReports(ctx context.Context, sub *submission.Submission) {
	if err := s.ReportCache.Delete(ctx, sub.ID.Hex()); err != nil {
		log.Error("invalidate report cache failed: %v", err)
	}
	if err := s.ReportCache.Delete(ctx, sub.TestID); err != nil {
		log.Error("invalidate class report cache failed: %v", err)
	}
}

// BuildGradingPrompt assembles the marking instructions, the test context,
// the question bank and the transcribed answers into one prompt.
func BuildGradingPrompt(base string, t *test.Test, questions []*questionbank.Question, answerText string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Test: %s (%s)\n", t.Title, t.Subject)
	fmt.Fprintf(&b, "Total marks: %d\n", t.TotalMarks)
	rubric := t.Rubric
	if rubric == "" {
		rubric = "Standard grading criteria"
	}
	fmt.Fprintf(&b, "\nMarking rubric:\n%s\n", rubric)
	if len(questions) > 0 {
		b.WriteString("\nQuestions:\n")
		for _, q := range questions {
			fmt.Fprintf(&b, "Q%s (%s marks): %s\n", q.QuestionNo, q.Marks, q.Text)
		}
	}
	fmt.Fprintf(&b, "\nStudent's answers:\n%s\n", answerText)
	b.WriteString("\nRespond exactly in this format:\n")
	b.WriteString("Total Score: <awarded>/<total>\n")
	b.WriteString("Question Scores:\nQ<no>: <awarded>/<total>\n")
	b.WriteString("Remarks: <overall remarks>\n")
	b.WriteString("Strengths: <what the student did well>\n")
	b.WriteString("Improvements: <what to work on>\n")
	return b.String()
}

// ParseGradingResponse extracts the structured grade from the model output.
// The awarded score is clamped to [0, maxScore].
func ParseGradingResponse(raw string, maxScore float64) (*GradeResult, error) {
	result := &GradeResult{MaxScore: maxScore}
	scoreSeen := false

	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "total score:"):
			awarded, total, err := parseScorePair(strings.TrimSpace(line[len("Total Score:"):]))
			if err != nil {
				return nil, fmt.Errorf("bad total score line %q: %w", line, err)
			}
			result.Score = awarded
			if total > 0 {
				result.MaxScore = total
			}
			scoreSeen = true
			section = ""
		case strings.HasPrefix(lower, "question scores:"):
			section = "questions"
		case strings.HasPrefix(lower, "remarks:"):
			result.Remarks = strings.TrimSpace(line[len("Remarks:"):])
			section = "remarks"
		case strings.HasPrefix(lower, "strengths:"):
			result.Strengths = strings.TrimSpace(line[len("Strengths:"):])
			section = "strengths"
		case strings.HasPrefix(lower, "improvements:"):
			result.Improvements = strings.TrimSpace(line[len("Improvements:"):])
			section = "improvements"
		default:
			switch section {
			case "questions":
				if qs, ok := parseQuestionScore(line); ok {
					result.QuestionScores = append(result.QuestionScores, qs)
				}
			case "remarks":
				result.Remarks = joinSection(result.Remarks, line)
			case "strengths":
				result.Strengths = joinSection(result.Strengths, line)
			case "improvements":
				result.Improvements = joinSection(result.Improvements, line)
			}
		}
	}

	if !scoreSeen {
		return nil, fmt.Errorf("no total score in response")
	}
	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > result.MaxScore {
		result.Score = result.MaxScore
	}
	return result, nil
}

// parseQuestionScore understands lines like "Q1: 3/5" or "Q2a: 1.5/2".
func parseQuestionScore(line string) (submission.QuestionScore, bool) {
	if !strings.HasPrefix(strings.ToUpper(line), "Q") {
		return submission.QuestionScore{}, false
	}
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return submission.QuestionScore{}, false
	}
	no := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(parts[0], "Q"), "q"))
	awarded, total, err := parseScorePair(strings.TrimSpace(parts[1]))
	if err != nil {
		return submission.QuestionScore{}, false
	}
	return submission.QuestionScore{QuestionNo: no, Awarded: awarded, Total: total}, true
}

// parseScorePair parses "42/50" or a bare "42".
func parseScorePair(s string) (awarded, total float64, err error) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "/"); idx >= 0 {
		awarded, err = cast.ToFloat64E(strings.TrimSpace(s[:idx]))
		if err != nil {
			return 0, 0, err
		}
		total, err = cast.ToFloat64E(strings.TrimSpace(s[idx+1:]))
		if err != nil {
			return 0, 0, err
		}
		return awarded, total, nil
	}
	awarded, err = cast.ToFloat64E(s)
	return awarded, 0, err
}

func joinSection(existing, line string) string {
	if existing == "" {
		return line
	}
	return existing + " " + line
}
