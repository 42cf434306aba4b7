package db

// SchemaSQL is the complete modern schema for fresh caseflow installs.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. All tests use
// it via GetSchemaSQL(); repository code referencing a column missing here
// fails immediately with "no such column" in tests.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Departments (organizational units cases are routed to)
CREATE TABLE IF NOT EXISTS departments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Employees (actors: intake, case workers, data stewards)
CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('intake', 'case_worker', 'data_steward')),
	department_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (department_id) REFERENCES departments(id)
);

-- Form cases (the central case record)
-- processing_employee_id doubles as the pessimistic lock: NULL means unlocked.
CREATE TABLE IF NOT EXISTS form_cases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	form_type TEXT NOT NULL CHECK(form_type IN ('service_request', 'cost_request', 'org_change')) DEFAULT 'service_request',
	status TEXT NOT NULL CHECK(status IN ('new', 'in_progress', 'in_clarification', 'done')) DEFAULT 'new',
	department_id INTEGER NOT NULL,
	created_by_employee_id INTEGER NOT NULL,
	processing_employee_id INTEGER,

	applicant_name TEXT NOT NULL,
	applicant_street TEXT NOT NULL,
	applicant_zip INTEGER NOT NULL,
	applicant_city TEXT NOT NULL,
	applicant_phone TEXT,
	applicant_email TEXT,

	subject TEXT,
	notes TEXT,

	service_description TEXT,
	justification TEXT,
	amount_cents INTEGER DEFAULT 0,
	cost_type TEXT,
	change_request TEXT,

	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (department_id) REFERENCES departments(id),
	FOREIGN KEY (created_by_employee_id) REFERENCES employees(id),
	FOREIGN KEY (processing_employee_id) REFERENCES employees(id)
);

-- PDF attachments (metadata; bytes live in blob storage under storage_key)
-- storage_key 'pending' marks a row whose bytes are not yet stored.
CREATE TABLE IF NOT EXISTS pdf_attachments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	form_case_id INTEGER NOT NULL,
	file_name TEXT NOT NULL,
	content_type TEXT NOT NULL,
	size_bytes INTEGER NOT NULL,
	storage_key TEXT NOT NULL DEFAULT 'pending',
	uploaded_by_employee_id INTEGER NOT NULL,
	uploaded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (form_case_id) REFERENCES form_cases(id) ON DELETE CASCADE,
	FOREIGN KEY (uploaded_by_employee_id) REFERENCES employees(id)
);

-- Clarification messages (append-only)
CREATE TABLE IF NOT EXISTS clarification_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	form_case_id INTEGER NOT NULL,
	created_by_employee_id INTEGER NOT NULL,
	message TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (form_case_id) REFERENCES form_cases(id) ON DELETE CASCADE,
	FOREIGN KEY (created_by_employee_id) REFERENCES employees(id)
);

CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department_id);
CREATE INDEX IF NOT EXISTS idx_form_cases_status ON form_cases(status);
CREATE INDEX IF NOT EXISTS idx_form_cases_department ON form_cases(department_id);
CREATE INDEX IF NOT EXISTS idx_form_cases_owner ON form_cases(created_by_employee_id);
CREATE INDEX IF NOT EXISTS idx_attachments_case ON pdf_attachments(form_case_id);
CREATE INDEX IF NOT EXISTS idx_clarifications_case ON clarification_messages(form_case_id);
`

// GetSchemaSQL returns the schema for test database setup.
// Tests must use this instead of hardcoding CREATE TABLE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they don't exist
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}

	return RunMigrations()
}
