package router

import (
	"github.com/trenchhq/trench-api/internal/application"
	"github.com/trenchhq/trench-api/internal/container"
	pginfra "github.com/trenchhq/trench-api/internal/infrastructure/postgres"
	handlers "github.com/trenchhq/trench-api/internal/interface/http"
	"github.com/trenchhq/trench-api/internal/router/modules"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

// InitModules constructs repositories, services, and handlers from the
// container singletons and registers every feature module with the registry.
// Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	tokenRepo := pginfra.NewResetTokenRepository(pool)
	studentRepo := pginfra.NewStudentRepository(pool)
	facultyRepo := pginfra.NewFacultyRepository(pool)
	adminRepo := pginfra.NewAdminRepository(pool)
	collegeRepo := pginfra.NewCollegeRepository(pool)
	departmentRepo := pginfra.NewDepartmentRepository(pool)

	authSvc := application.NewAuthService(
		userRepo,
		tokenRepo,
		container.GetJWT(),
		container.GetRabbitPub(),
		logger,
		cfg.FrontendURL,
		cfg.ResetPasswordURL,
		cfg.MailSendEnabled,
	)
	userSvc := application.NewUserService(userRepo, logger)
	studentSvc := application.NewStudentService(studentRepo, userRepo, logger)
	facultySvc := application.NewFacultyService(facultyRepo, userRepo, logger)
	adminSvc := application.NewAdminService(
		adminRepo, userRepo, studentRepo, facultyRepo, collegeRepo, departmentRepo,
		container.GetRedis(), logger,
	)
	collegeSvc := application.NewCollegeService(collegeRepo, logger)
	departmentSvc := application.NewDepartmentService(departmentRepo, collegeRepo, logger)

	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, cookies, logger), container.GetJWT()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, authSvc, logger), container.GetJWT()))
	r.Add(modules.NewStudentModule(handlers.NewStudentHandler(studentSvc, logger), container.GetJWT()))
	r.Add(modules.NewFacultyModule(handlers.NewFacultyHandler(facultySvc, logger), container.GetJWT()))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), container.GetJWT()))
	r.Add(modules.NewCollegeModule(handlers.NewCollegeHandler(collegeSvc, logger), container.GetJWT()))
	r.Add(modules.NewDepartmentModule(handlers.NewDepartmentHandler(departmentSvc, logger), container.GetJWT()))
}
