package setting

import (
	"context"
	"errors"
	"time"

	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	prefixSettingCacheKey = "cache:setting"
	SettingCollectionName = "setting"
)

var defaultPrompts = map[string]string{
	consts.PromptOCR: "Extract all text from this image accurately. Preserve formatting and structure.",
	consts.PromptGrading: "Grade this answer accurately. Provide total score, per-question scores, remarks, strengths, and areas for improvement.",
	consts.PromptRubricExtraction: `Extract the rubric table from this image and return it as a structured JSON format.
The rubric typically contains columns like: Concept No., Concept (With Explanation), Example, Status.
Return the data as: {"rubric": [{"concept_no": "1", "concept": "...", "explanation": "...", "example": "...", "status": "..."}]}
Preserve all mathematical formulas and formatting in the examples.`,
	consts.PromptTestExtraction: `Extract all questions from this test paper image.
Identify and number each question clearly. Preserve mathematical formulas, diagrams descriptions, and formatting.
Return as JSON: {"questions": [{"question_no": "1", "question_text": "...", "marks": "...", "type": "..."}]}`,
	consts.PromptAnswerExtraction: `Extract the student's answers from this answer sheet image.
Match answers to question numbers. Preserve mathematical work, diagrams, and step-by-step solutions.
Return as JSON: {"answers": [{"question_no": "1", "answer_text": "...", "working_shown": "..."}]}`,
}

type IMongoMapper interface {
	Insert(ctx context.Context, p *Prompt) error
	Update(ctx context.Context, p *Prompt) error
	FindByType(ctx context.Context, promptType string) (*Prompt, error)
	FindAll(ctx context.Context) ([]*Prompt, error)
	TextOrDefault(ctx context.Context, promptType string) string
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SettingCollectionName, config.Cache)
	m := &MongoMapper{
		conn: conn,
	}
	m.ensureDefaults(context.Background())
	return m
}

// ensureDefaults seeds the stock prompts for any type not present yet.
func (m *MongoMapper) ensureDefaults(ctx context.Context) {
	for promptType, promptText := range defaultPrompts {
		_, err := m.FindByType(ctx, promptType)
		if !errors.Is(err, consts.ErrNotFound) {
			continue
		}
		p := &Prompt{
			PromptType: promptType,
			PromptText: promptText,
		}
		if err := m.Insert(ctx, p); err != nil {
			log.Error("seed prompt %s failed: %v", promptType, err)
		}
	}
}

func (m *MongoMapper) Insert(ctx context.Context, p *Prompt) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
		p.CreateTime = time.Now()
		p.UpdateTime = p.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, p)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, p *Prompt) error {
	p.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, p.ID, bson.M{"$set": p})
	return err
}

func (m *MongoMapper) FindByType(ctx context.Context, promptType string) (*Prompt, error) {
	var p Prompt
	err := m.conn.FindOneNoCache(ctx, &p, bson.M{"prompt_type": promptType})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &p, nil
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Prompt, error) {
	var prompts []*Prompt
	err := m.conn.Find(ctx, &prompts, bson.M{})
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// TextOrDefault returns the stored prompt text, falling back to the built-in
// default when the record is missing.
func (m *MongoMapper) TextOrDefault(ctx context.Context, promptType string) string {
	p, err := m.FindByType(ctx, promptType)
	if err != nil {
		return defaultPrompts[promptType]
	}
	return p.PromptText
}
