package service

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/application/dto/basic"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/student"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/user"
	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"
	"paper-grade/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"
)

type IStudentService interface {
	CreateStudent(ctx context.Context, req *assistant.CreateStudentReq) (*assistant.CreateStudentResp, error)
	ListStudents(ctx context.Context, req *assistant.ListStudentsReq) (*assistant.ListStudentsResp, error)
	GetStudent(ctx context.Context, req *assistant.GetStudentReq) (*assistant.GetStudentResp, error)
	UpdateStudent(ctx context.Context, req *assistant.UpdateStudentReq) (*basic.Response, error)
	DeleteStudent(ctx context.Context, req *assistant.DeleteStudentReq) (*basic.Response, error)
}

type StudentService struct {
	StudentMapper    student.IMongoMapper
	SubmissionMapper submission.IMongoMapper
	UserMapper       user.IMongoMapper
}

var StudentServiceSet = wire.NewSet(
	wire.Struct(new(StudentService), "*"),
	wire.Bind(new(IStudentService), new(*StudentService)),
)

// CreateStudent adds a roster record and provisions the student's login.
func (s *StudentService) CreateStudent(ctx context.Context, req *assistant.CreateStudentReq) (*assistant.CreateStudentResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if _, err := s.UserMapper.FindOneByUsername(ctx, req.Username); err == nil {
		return nil, consts.ErrRepeatedSignUp
	}

	record := &student.Student{
		Name:      req.Name,
		ClassName: req.ClassName,
	}
	if err := s.StudentMapper.Insert(ctx, record); err != nil {
		log.Error("insert student failed: %v", err)
		return nil, consts.ErrCreateStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, consts.ErrCreateStudent
	}
	account := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         consts.RoleStudent,
		StudentID:    record.ID.Hex(),
	}
	if err := s.UserMapper.Insert(ctx, account); err != nil {
		log.Error("insert student account failed: %v", err)
		// roll back the roster record so name and login stay in step
		if delErr := s.StudentMapper.Delete(ctx, record.ID.Hex()); delErr != nil {
			log.Error("rollback student record failed: %v", delErr)
		}
		return nil, consts.ErrCreateStudent
	}

	return &assistant.CreateStudentResp{StudentId: record.ID.Hex()}, nil
}

func (s *StudentService) ListStudents(ctx context.Context, req *assistant.ListStudentsReq) (*assistant.ListStudentsResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	p, pageSize := page.Parse(req.PaginationOptions)
	students, total, err := s.StudentMapper.FindMany(ctx, req.Search, p, pageSize)
	if err != nil {
		log.Error("list students failed: %v", err)
		return nil, consts.ErrNotFound
	}

	infos := make([]*assistant.StudentInfo, 0, len(students))
	for _, record := range students {
		info := &assistant.StudentInfo{}
		if err = copier.Copy(info, record); err != nil {
			return nil, err
		}
		info.Id = record.ID.Hex()
		info.CreateTime = record.CreateTime.Unix()
		infos = append(infos, info)
	}

	return &assistant.ListStudentsResp{
		Students: infos,
		Total:    total,
	}, nil
}

func (s *StudentService) GetStudent(ctx context.Context, req *assistant.GetStudentReq) (*assistant.GetStudentResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	record, err := s.StudentMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	return &assistant.GetStudentResp{
		Student: &assistant.StudentInfo{
			Id:         record.ID.Hex(),
			Name:       record.Name,
			ClassName:  record.ClassName,
			CreateTime: record.CreateTime.Unix(),
		},
	}, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, req *assistant.UpdateStudentReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	record, err := s.StudentMapper.FindOne(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.ClassName != nil {
		record.ClassName = *req.ClassName
	}

	if err = s.StudentMapper.Update(ctx, record); err != nil {
		return nil, consts.ErrUpdate
	}
	return util.Succeed("student updated")
}

// DeleteStudent removes a student without submissions. The roster and the
// login account go together.
func (s *StudentService) DeleteStudent(ctx context.Context, req *assistant.DeleteStudentReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if meta.GetRole() != consts.RoleAdmin {
		return nil, consts.ErrForbidden
	}

	if _, err := s.StudentMapper.FindOne(ctx, req.StudentId); err != nil {
		return nil, consts.ErrNotFound
	}

	count, err := s.SubmissionMapper.CountByStudentID(ctx, req.StudentId)
	if err != nil {
		return nil, consts.ErrUpdate
	}
	if count > 0 {
		return nil, consts.ErrStudentHasWork
	}

	if err = s.StudentMapper.Delete(ctx, req.StudentId); err != nil {
		return nil, consts.ErrUpdate
	}
	if err = s.UserMapper.DeleteByStudentID(ctx, req.StudentId); err != nil {
		log.Error("delete student account failed: %v", err)
	}
	return util.Succeed("student deleted")
}
