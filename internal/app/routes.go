package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/auth"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/config"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/handlers"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/repo"
	"github.com/Xinyu-Cheng/cs103a-cpa02/internal/service"
)

// Setup registers all routes on the given engine. LoadUser runs
// globally so the current user is available everywhere; RequireLogin is
// applied only to the gated group, never to the public browsing routes.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	sessions := auth.NewStore(rdb, cfg.Session.TTL.Duration())

	userRepo := repo.NewPGUserRepo(db)
	todoRepo := repo.NewPGTodoRepo(db)
	courseRepo := repo.NewPGCourseRepo(db)
	scheduleRepo := repo.NewPGScheduleRepo(db)
	collegeRepo := repo.NewPGCollegeRepo(db)
	schoolListRepo := repo.NewPGSchoolListRepo(db)

	userSvc := service.NewUserService(userRepo)
	todoSvc := service.NewTodoService(todoRepo)
	catalogSvc := service.NewCatalogService(courseRepo, cfg.Catalog.EmailDomain)
	scheduleSvc := service.NewScheduleService(scheduleRepo, courseRepo)
	collegeSvc := service.NewCollegeService(collegeRepo, schoolListRepo)
	datasetSvc := service.NewDatasetService(courseRepo, collegeRepo)

	pages := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(sessions, userSvc, int(cfg.Session.TTL.Duration().Seconds()))
	todoHandler := handlers.NewTodoHandler(todoSvc)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)
	scheduleHandler := handlers.NewScheduleHandler(scheduleSvc)
	collegeHandler := handlers.NewCollegeHandler(collegeSvc)
	datasetHandler := handlers.NewDatasetHandler(datasetSvc)

	r.Use(auth.LoadUser(sessions, userRepo))

	// public pages
	r.GET("/", pages.Home)
	r.GET("/about", pages.About)
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	// auth
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)

	// public catalog browsing
	r.GET("/upsertDB", datasetHandler.UpsertColleges)
	r.GET("/upsertCourses", datasetHandler.UpsertCourses)
	r.POST("/courses/bySubject", catalogHandler.BySubject)
	r.POST("/courses/byWord", catalogHandler.ByWord)
	r.POST("/courses/byAvailability", catalogHandler.ByAvailability)
	r.POST("/courses/byCoursenum", catalogHandler.ByCoursenum)
	r.POST("/courses/byInst", catalogHandler.ByInstructorForm)
	r.GET("/courses/byInst/:email", catalogHandler.ByInstructorParam)
	r.GET("/courses/show/:courseId", catalogHandler.Show)
	r.POST("/colleges/byName", collegeHandler.ByName)
	r.GET("/collegelist/show", pages.CollegeSearchPage)
	r.GET("/colleges/show/:collegeId", collegeHandler.Show)

	// gated routes
	protected := r.Group("", auth.RequireLogin())
	protected.GET("/todo", todoHandler.List)
	protected.POST("/todo/add", todoHandler.Add)
	protected.GET("/todo/delete/:itemId", todoHandler.Delete)
	protected.GET("/todo/completed/:value/:itemId", todoHandler.Completed)
	protected.GET("/addCourse/:courseId", scheduleHandler.Add)
	protected.GET("/schedule/show", scheduleHandler.Show)
	protected.GET("/schedule/remove/:courseId", scheduleHandler.Remove)
	protected.GET("/addCollege/:collegeId", collegeHandler.AddToList)
	protected.GET("/schoolList/show", collegeHandler.ShowList)
	protected.GET("/schoolList/remove/:collegeId", collegeHandler.RemoveFromList)

	r.NoRoute(handlers.NotFound)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
