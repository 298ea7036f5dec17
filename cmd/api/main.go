package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/glassdash/crm-backend-go/internal/config"
	appHTTP "github.com/glassdash/crm-backend-go/internal/handler/http"
	"github.com/glassdash/crm-backend-go/internal/pkg/database"
	"github.com/glassdash/crm-backend-go/internal/pkg/jwt"
	"github.com/glassdash/crm-backend-go/internal/pkg/kvstore"
	"github.com/glassdash/crm-backend-go/internal/repository/kv"
	attendanceService "github.com/glassdash/crm-backend-go/internal/service/attendance"
	authService "github.com/glassdash/crm-backend-go/internal/service/auth"
	customerService "github.com/glassdash/crm-backend-go/internal/service/customer"
	dashboardService "github.com/glassdash/crm-backend-go/internal/service/dashboard"
	employeeService "github.com/glassdash/crm-backend-go/internal/service/employee"
	leadService "github.com/glassdash/crm-backend-go/internal/service/lead"
	payrollService "github.com/glassdash/crm-backend-go/internal/service/payroll"
	projectService "github.com/glassdash/crm-backend-go/internal/service/project"
	taskService "github.com/glassdash/crm-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var store kvstore.Store
	switch cfg.Store.Driver {
	case "memory":
		store = kvstore.NewMemoryStore()
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		store, err = kvstore.NewPostgresStore(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to initialize record store: ", err)
		}
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	userRepo := kv.NewUserRepository(store)
	employeeRepo := kv.NewEmployeeRepository(store)
	customerRepo := kv.NewCustomerRepository(store)
	leadRepo := kv.NewLeadRepository(store)
	projectRepo := kv.NewProjectRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	attendanceRepo := kv.NewAttendanceRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	customerSvc := customerService.NewCustomerService(customerRepo)
	leadSvc := leadService.NewLeadService(leadRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(customerRepo, leadRepo, employeeRepo, projectRepo, taskRepo, attendanceRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Customer:   appHTTP.NewCustomerHandler(customerSvc),
		Lead:       appHTTP.NewLeadHandler(leadSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
