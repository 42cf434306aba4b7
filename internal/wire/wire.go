// Package wire provides dependency injection for the caseflow application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/caseflow/internal/adapters/cli"
	"github.com/example/caseflow/internal/adapters/filesystem"
	"github.com/example/caseflow/internal/adapters/sqlite"
	"github.com/example/caseflow/internal/app"
	"github.com/example/caseflow/internal/db"
	"github.com/example/caseflow/internal/ports/primary"
)

var (
	caseService          primary.FormCaseService
	attachmentService    primary.AttachmentService
	clarificationService primary.ClarificationService
	employeeService      primary.EmployeeService
	departmentService    primary.DepartmentService
	once                 sync.Once
)

// CaseService returns the singleton FormCaseService instance.
func CaseService() primary.FormCaseService {
	once.Do(initServices)
	return caseService
}

// AttachmentService returns the singleton AttachmentService instance.
func AttachmentService() primary.AttachmentService {
	once.Do(initServices)
	return attachmentService
}

// ClarificationService returns the singleton ClarificationService instance.
func ClarificationService() primary.ClarificationService {
	once.Do(initServices)
	return clarificationService
}

// EmployeeService returns the singleton EmployeeService instance.
func EmployeeService() primary.EmployeeService {
	once.Do(initServices)
	return employeeService
}

// DepartmentService returns the singleton DepartmentService instance.
func DepartmentService() primary.DepartmentService {
	once.Do(initServices)
	return departmentService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	caseRepo := sqlite.NewFormCaseRepository(database)
	employeeRepo := sqlite.NewEmployeeRepository(database)
	attachmentRepo := sqlite.NewAttachmentRepository(database)
	clarificationRepo := sqlite.NewClarificationRepository(database)
	departmentRepo := sqlite.NewDepartmentRepository(database)

	storage, err := filesystem.NewAttachmentStorage("")
	if err != nil {
		log.Fatalf("failed to initialize attachment storage: %v", err)
	}

	// Services (primary ports implementation)
	caseService = app.NewFormCaseService(caseRepo, employeeRepo, attachmentRepo)
	attachmentService = app.NewAttachmentService(attachmentRepo, caseRepo, storage)
	clarificationService = app.NewClarificationService(clarificationRepo, caseRepo, employeeRepo)
	employeeService = app.NewEmployeeService(employeeRepo, departmentRepo)
	departmentService = app.NewDepartmentService(departmentRepo)
}

// CaseAdapter returns a new CaseAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CaseAdapter() *cliadapter.CaseAdapter {
	return CaseAdapterWithOutput(os.Stdout)
}

// CaseAdapterWithOutput returns a new CaseAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func CaseAdapterWithOutput(out io.Writer) *cliadapter.CaseAdapter {
	once.Do(initServices)
	return cliadapter.NewCaseAdapter(caseService, out)
}

// AttachmentAdapter returns a new AttachmentAdapter writing to stdout.
func AttachmentAdapter() *cliadapter.AttachmentAdapter {
	return AttachmentAdapterWithOutput(os.Stdout)
}

// AttachmentAdapterWithOutput returns a new AttachmentAdapter writing to the given output.
func AttachmentAdapterWithOutput(out io.Writer) *cliadapter.AttachmentAdapter {
	once.Do(initServices)
	return cliadapter.NewAttachmentAdapter(attachmentService, out)
}

// ClarificationAdapter returns a new ClarificationAdapter writing to stdout.
func ClarificationAdapter() *cliadapter.ClarificationAdapter {
	return ClarificationAdapterWithOutput(os.Stdout)
}

// ClarificationAdapterWithOutput returns a new ClarificationAdapter writing to the given output.
func ClarificationAdapterWithOutput(out io.Writer) *cliadapter.ClarificationAdapter {
	once.Do(initServices)
	return cliadapter.NewClarificationAdapter(clarificationService, out)
}

// EmployeeAdapter returns a new EmployeeAdapter writing to stdout.
func EmployeeAdapter() *cliadapter.EmployeeAdapter {
	return EmployeeAdapterWithOutput(os.Stdout)
}

// EmployeeAdapterWithOutput returns a new EmployeeAdapter writing to the given output.
func EmployeeAdapterWithOutput(out io.Writer) *cliadapter.EmployeeAdapter {
	once.Do(initServices)
	return cliadapter.NewEmployeeAdapter(employeeService, departmentService, out)
}
