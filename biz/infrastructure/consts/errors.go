package consts

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno creates a coded error
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// auth errors
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignIn            = NewErrno(codes.Code(1001), errors.New("invalid username or password"))
	ErrSignUp            = NewErrno(codes.Code(1002), errors.New("sign up failed, please retry"))
	ErrRepeatedSignUp    = NewErrno(codes.Code(1003), errors.New("username already taken"))
)

// ErrAccountLockedFor carries the time left on a lockout.
func ErrAccountLockedFor(remaining time.Duration) *Errno {
	return NewErrno(codes.Code(1004),
		fmt.Errorf("account locked after too many failed attempts, try again in %d seconds", int(remaining.Seconds())))
}

// domain errors
var (
	ErrCreateStudent       = NewErrno(codes.Code(1010), errors.New("failed to create student"))
	ErrStudentHasWork      = NewErrno(codes.Code(1011), errors.New("student has submissions and cannot be deleted"))
	ErrCreateTest          = NewErrno(codes.Code(1012), errors.New("failed to create test"))
	ErrDuplicateTest       = NewErrno(codes.Code(1013), errors.New("a test with this title and date already exists"))
	ErrTestHasSubmissions  = NewErrno(codes.Code(1014), errors.New("test has submissions and cannot be deleted"))
	ErrSubmit              = NewErrno(codes.Code(1015), errors.New("failed to submit answer sheet"))
	ErrDuplicateSubmission = NewErrno(codes.Code(1016), errors.New("answer sheet already submitted for this test"))
	ErrNotGraded           = NewErrno(codes.Code(1017), errors.New("submission has not been graded yet"))
	ErrGradingUnavailable  = NewErrno(codes.Code(1018), errors.New("grading unavailable, please retry"))
	ErrGradingInProgress   = NewErrno(codes.Code(1019), errors.New("grading already in progress for this submission"))
	ErrOCR                 = NewErrno(codes.Code(1020), errors.New("text extraction failed, please retry"))
	ErrNoQuestionPaper     = NewErrno(codes.Code(1021), errors.New("test has no question paper attached"))
	ErrReport              = NewErrno(codes.Code(1022), errors.New("failed to generate report"))
	ErrNoGradedWork        = NewErrno(codes.Code(1023), errors.New("no graded submissions for this test"))
)

// upload errors
var (
	ErrFileTooLarge = NewErrno(codes.Code(1030), errors.New("uploaded file exceeds the size limit"))
	ErrFileType     = NewErrno(codes.Code(1031), errors.New("unsupported file type"))
	ErrFileEmpty    = NewErrno(codes.Code(1032), errors.New("uploaded file is empty"))
	ErrStoreFile    = NewErrno(codes.Code(1033), errors.New("failed to store file"))
	ErrFileNotFound = NewErrno(codes.NotFound, errors.New("file not found"))
)

// call errors
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid parameters"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("downstream call failed, please retry"))
)

// database errors
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
)
