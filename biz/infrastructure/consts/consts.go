package consts

var PageSize int64 = 10

// database fields
const (
	ID         = "_id"
	Status     = "status"
	StudentID  = "student_id"
	TestID     = "test_id"
	Username   = "username"
	CreateTime = "create_time"
	UpdateTime = "update_time"
)

// user roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// submission status
const (
	StatusSubmitted = "submitted"
	StatusGrading   = "grading"
	StatusGraded    = "graded"
	StatusFailed    = "failed"
)

// prompt types
const (
	PromptOCR              = "ocr"
	PromptGrading          = "grading"
	PromptRubricExtraction = "rubric_extraction"
	PromptTestExtraction   = "test_extraction"
	PromptAnswerExtraction = "answer_extraction"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	ContentTypePDF  = "application/pdf"
)

// defaults
const (
	DefaultTotalMarks  = 100
	DefaultAdminName   = "admin"
	MaxLoginAttempts   = 5
	LockoutWindowMin   = 5
	GradingMaxAttempts = 3
	GradingTimeoutMin  = 20
	FileRetentionDays  = 7
	MaxUploadBytes     = 10 << 20
	ReportCacheExpireS = 3600
)

// upload content types accepted for question papers and answer sheets
var AllowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}
