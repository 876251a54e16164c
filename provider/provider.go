package provider

import (
	"paper-grade/biz/application/service"
	"paper-grade/biz/infrastructure/cache"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/lock"
	"paper-grade/biz/infrastructure/repository/questionbank"
	"paper-grade/biz/infrastructure/repository/setting"
	"paper-grade/biz/infrastructure/repository/student"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"
	"paper-grade/biz/infrastructure/repository/user"
	"paper-grade/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider holds the objects the controllers depend on.
type Provider struct {
	Config             *config.Config
	UserService        service.UserService
	StudentService     service.StudentService
	TestService        service.TestService
	FileService        service.FileService
	SubmissionService  service.SubmissionService
	GradingService     service.GradingService
	ReportService      service.ReportService
	SettingService     service.SettingService
	MaintenanceService service.MaintenanceService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.StudentServiceSet,
	service.TestServiceSet,
	service.FileServiceSet,
	service.SubmissionServiceSet,
	service.GradingServiceSet,
	service.ReportServiceSet,
	service.SettingServiceSet,
	service.MaintenanceServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.IMongoMapper), new(*user.MongoMapper)),
	student.NewMongoMapper,
	wire.Bind(new(student.IMongoMapper), new(*student.MongoMapper)),
	test.NewMongoMapper,
	wire.Bind(new(test.IMongoMapper), new(*test.MongoMapper)),
	submission.NewMongoMapper,
	wire.Bind(new(submission.IMongoMapper), new(*submission.MongoMapper)),
	setting.NewMongoMapper,
	wire.Bind(new(setting.IMongoMapper), new(*setting.MongoMapper)),
	questionbank.NewMySQLMapper,
	wire.Bind(new(questionbank.IMapper), new(*questionbank.MySQLMapper)),
	storage.NewGridFSStore,
	wire.Bind(new(storage.IStore), new(*storage.GridFSStore)),
	cache.NewReportCacheMapper,
	wire.Bind(new(cache.IReportCacheMapper), new(*cache.ReportCacheMapper)),
	lock.NewRedisFactory,
	wire.Bind(new(lock.Factory), new(*lock.RedisFactory)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
