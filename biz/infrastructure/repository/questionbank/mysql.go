package questionbank

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/util/log"

	_ "github.com/go-sql-driver/mysql"
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS questions (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	test_id VARCHAR(64) NOT NULL,
	subject VARCHAR(128) NOT NULL DEFAULT '',
	question_no VARCHAR(16) NOT NULL,
	question_text TEXT NOT NULL,
	marks VARCHAR(16) NOT NULL DEFAULT '',
	question_type VARCHAR(64) NOT NULL DEFAULT '',
	INDEX idx_test (test_id),
	INDEX idx_subject (subject)
)`

type MySQLMapper struct {
	db *sql.DB
}

type IMapper interface {
	ReplaceForTest(ctx context.Context, testID, subject string, questions []*Question) error
	ListQuestions(ctx context.Context, testID, subject string, page, pageSize int64) ([]*Question, int64, error)
	DeleteForTest(ctx context.Context, testID string) error
}

func NewMySQLMapper(config *config.Config) (*MySQLMapper, error) {
	db, err := sql.Open("mysql", config.MySQL.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}
	if _, err := db.Exec(createTableStmt); err != nil {
		return nil, fmt.Errorf("failed to create questions table: %w", err)
	}
	log.Info("MySQL question bank connection established")
	return &MySQLMapper{db: db}, nil
}

func (m *MySQLMapper) Close() error {
	return m.db.Close()
}

// ReplaceForTest swaps out the stored questions of a test in one transaction,
// so re-running extraction never leaves duplicates behind.
func (m *MySQLMapper) ReplaceForTest(ctx context.Context, testID, subject string, questions []*Question) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE test_id = ?", testID); err != nil {
		return err
	}
	for _, q := range questions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO questions (test_id, subject, question_no, question_text, marks, question_type)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			testID, subject, q.QuestionNo, q.Text, q.Marks, q.Type)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListQuestions filters by test and/or subject with pagination.
func (m *MySQLMapper) ListQuestions(ctx context.Context, testID, subject string, page, pageSize int64) ([]*Question, int64, error) {
	var conditions []string
	var args []interface{}

	if testID != "" {
		conditions = append(conditions, "test_id = ?")
		args = append(args, testID)
	}
	if subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, subject)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM questions %s", whereClause)
	var total int64
	if err := m.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT id, test_id, subject, question_no, question_text, marks, question_type FROM questions %s ORDER BY test_id, question_no LIMIT ? OFFSET ?",
		whereClause)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var questions []*Question
	for rows.Next() {
		q := new(Question)
		if err := rows.Scan(&q.ID, &q.TestID, &q.Subject, &q.QuestionNo, &q.Text, &q.Marks, &q.Type); err != nil {
			return nil, 0, err
		}
		questions = append(questions, q)
	}
	return questions, total, rows.Err()
}

// DeleteForTest removes a deleted test's questions from the bank.
func (m *MySQLMapper) DeleteForTest(ctx context.Context, testID string) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM questions WHERE test_id = ?", testID)
	return err
}
