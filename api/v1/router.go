package v1

import (
	"github.com/bugify-api/middleware"
	"github.com/bugify-api/services"
	"github.com/gin-gonic/gin"
)

// API bundles the controllers and registers the route tree.
type API struct {
	tokens    *services.TokenService
	auth      *AuthController
	authSvc   *services.AuthService
	bugs      *BugController
	dashboard *DashboardController
	manage    *ManageController
	mybugs    *MyBugsController
	profile   *ProfileController
	projects  *ProjectController
}

// NewAPI wires the controllers onto the given services.
func NewAPI(
	tokens *services.TokenService,
	auth *services.AuthService,
	bugs *services.BugService,
	projects *services.ProjectService,
	profile *services.ProfileService,
	dashboard *services.DashboardService,
) *API {
	return &API{
		tokens:    tokens,
		authSvc:   auth,
		auth:      NewAuthController(auth),
		bugs:      NewBugController(bugs),
		dashboard: NewDashboardController(dashboard),
		manage:    NewManageController(bugs, dashboard),
		mybugs:    NewMyBugsController(bugs),
		profile:   NewProfileController(profile),
		projects:  NewProjectController(projects),
	}
}

// RegisterRoutes registers all API routes. Everything except the banner,
// health check, register and login sits behind the auth middleware.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/", Root)
	router.GET("/health", HealthCheck)

	authenticate := middleware.AuthMiddleware(a.tokens, a.authSvc)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", a.auth.Register)
		authGroup.POST("/login", a.auth.Login)
		authGroup.POST("/logout", a.auth.Logout)
		authGroup.GET("/me", authenticate, a.auth.Me)
	}

	bugGroup := router.Group("/bugs")
	bugGroup.Use(authenticate)
	{
		bugGroup.POST("", a.bugs.Create)
		bugGroup.GET("/:id", a.bugs.Get)
		bugGroup.PUT("/:id", a.bugs.Update)
		bugGroup.DELETE("/:id", a.bugs.Delete)
	}

	dashboardGroup := router.Group("/dashboard")
	dashboardGroup.Use(authenticate)
	{
		dashboardGroup.GET("/users", a.dashboard.Users)
		dashboardGroup.GET("/projects", a.dashboard.Projects)
		dashboardGroup.GET("/bugs", a.dashboard.Bugs)
		dashboardGroup.GET("/stats", a.dashboard.Stats)
	}

	manageGroup := router.Group("/manage")
	manageGroup.Use(authenticate)
	{
		manageGroup.GET("/bugs", a.manage.Bugs)
		manageGroup.PUT("/bugs/:id/assign", a.manage.Assign)
		manageGroup.PUT("/bugs/:id/status", a.manage.SetStatus)
		manageGroup.GET("/developers", a.manage.Developers)
	}

	mybugsGroup := router.Group("/mybugs")
	mybugsGroup.Use(authenticate)
	{
		mybugsGroup.GET("", a.mybugs.List)
		mybugsGroup.GET("/stats", a.mybugs.Stats)
		mybugsGroup.PUT("/:id/status", a.mybugs.SetStatus)
		mybugsGroup.GET("/projects", a.mybugs.Projects)
	}

	profileGroup := router.Group("/profile")
	profileGroup.Use(authenticate)
	{
		profileGroup.GET("/me", a.profile.Get)
		profileGroup.PUT("/me", a.profile.Update)
		profileGroup.PUT("/me/password", a.profile.ChangePassword)
		profileGroup.GET("/me/stats", a.profile.Stats)
		profileGroup.GET("/me/activity", a.profile.Activity)
	}

	projectGroup := router.Group("/projects")
	projectGroup.Use(authenticate)
	{
		projectGroup.POST("", a.projects.Create)
		projectGroup.GET("/:id", a.projects.Get)
		projectGroup.DELETE("/:id", a.projects.Delete)
	}
}
