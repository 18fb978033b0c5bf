package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/config"
	"greenwood.com/sis/core"
	"greenwood.com/sis/directory"
	"greenwood.com/sis/report"
	"greenwood.com/sis/web/handlers"
	"greenwood.com/sis/web/middlewares"
)

func main() {
	_ = godotenv.Load()

	log := config.GetLogrusInstance()

	cfg, err := config.Load(os.Getenv("SIS_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.ApplyLogLevel(log, cfg.LogLevel)

	db, err := core.NewManager(cfg.DataDir)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Init(); err != nil {
		log.Fatalf("init database: %v", err)
	}

	engine := attendance.NewEngine(db)
	dir := directory.New(db)
	reports, err := report.NewGenerator(cfg.ReportsDir, engine, dir)
	if err != nil {
		log.Fatalf("init reports: %v", err)
	}

	ep := handlers.NewEndpoint(db, engine, dir, reports, log)

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/stats", ep.GetStats)
		api.GET("/classes", ep.ListClasses)
		api.GET("/departments", ep.ListDepartments)

		api.GET("/students", ep.ListStudents)
		api.GET("/search/students", ep.SearchStudents)
		api.GET("/students/:id", ep.GetStudent)
		api.POST("/students", ep.CreateStudent)
		api.PUT("/students/:id", ep.UpdateStudent)
		api.GET("/students/:id/results", ep.GetStudentResults)
		api.POST("/students/:id/results", ep.UpdateStudentResults)
		api.POST("/students/:id/attendance", ep.MarkStudentAttendance)
		api.GET("/students/:id/attendance_summary", ep.StudentAttendanceSummary)
		api.GET("/students/:id/academic_summary", ep.StudentAcademicSummary)
		api.GET("/students/:id/monthly_attendance", ep.GetMonthlyAttendance)
		api.POST("/students/:id/monthly_attendance", ep.SaveMonthlyAttendance)
		api.POST("/students/:id/term_attendance", ep.SaveTermAttendance)
		api.GET("/export/students", ep.ExportStudents)
		api.GET("/report/student/:id", ep.StudentResultsReport)

		api.GET("/employees", ep.ListEmployees)
		api.GET("/employee/:id/context", ep.EmployeeContext)
		api.GET("/employee/:id/attendance", ep.EmployeeAttendance)
		api.GET("/employee/:id/overtime", ep.EmployeeOvertime)
		api.GET("/employee/:id/has-checked-in", ep.HasCheckedInToday)
		api.GET("/report/employee/:id/hours", ep.EmployeeHoursReport)

		api.POST("/checkin", ep.CheckIn)
		api.POST("/checkout", ep.CheckOut)
		api.GET("/attendance", ep.ListAttendance)

		api.POST("/corrections", ep.SubmitCorrection)
		api.GET("/corrections", ep.ListCorrections)

		api.GET("/announcements", ep.ListAnnouncements)
		api.POST("/announcements/:id/read", ep.MarkAnnouncementRead)
		api.GET("/events", ep.ListEvents)
	}

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminPassword(dir))
	{
		admin.DELETE("/students/:id", ep.DeleteStudent)
		admin.POST("/import/students", ep.ImportStudents)

		admin.POST("/employees", ep.CreateEmployee)
		admin.PUT("/employees/:id", ep.UpdateEmployee)
		admin.DELETE("/employees/:id", ep.DeleteEmployee)
		admin.POST("/employees/:id/grades", ep.AssignGrade)
		admin.DELETE("/employees/:id/grades", ep.RemoveGrade)
		admin.PUT("/employees/:id/working-hours", ep.SetEmployeeHours)
		admin.PUT("/working-hours", ep.SetStandardHours)

		admin.POST("/corrections/:id/process", ep.ProcessCorrection)

		admin.POST("/announcements", ep.CreateAnnouncement)
		admin.DELETE("/announcements/:id", ep.DeleteAnnouncement)
		admin.POST("/events", ep.CreateEvent)

		admin.GET("/settings", ep.GetSettings)
		admin.PUT("/settings/password", ep.ChangeAdminPassword)
		admin.PUT("/settings/term-days", ep.SetTermDays)
		admin.POST("/backup", ep.CreateBackup)
	}

	log.WithField("addr", cfg.ListenAddr).Info("starting school server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
