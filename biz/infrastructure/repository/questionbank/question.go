package questionbank

// Question is one extracted test question stored in the question bank.
type Question struct {
	ID         int64  `db:"id"`
	TestID     string `db:"test_id"`
	Subject    string `db:"subject"`
	QuestionNo string `db:"question_no"`
	Text       string `db:"question_text"`
	Marks      string `db:"marks"`
	Type       string `db:"question_type"`
}
