package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/example/caseflow/internal/core/attachment"
	"github.com/example/caseflow/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockFormCaseRepository implements secondary.FormCaseRepository for testing.
type mockFormCaseRepository struct {
	cases       map[int64]*secondary.FormCaseRecord
	departments map[int64]bool
	nextID      int64

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error

	getCalls    int
	updateCalls int
}

func newMockFormCaseRepository() *mockFormCaseRepository {
	return &mockFormCaseRepository{
		cases:       make(map[int64]*secondary.FormCaseRecord),
		departments: map[int64]bool{1: true, 2: true},
		nextID:      1,
	}
}

func (m *mockFormCaseRepository) Create(ctx context.Context, formCase *secondary.FormCaseRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	formCase.ID = m.nextID
	m.nextID++
	m.cases[formCase.ID] = formCase
	return nil
}

func (m *mockFormCaseRepository) GetByID(ctx context.Context, id int64) (*secondary.FormCaseRecord, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cases[id], nil
}

func (m *mockFormCaseRepository) List(ctx context.Context) ([]*secondary.FormCaseRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.FormCaseRecord
	for id := int64(1); id < m.nextID; id++ {
		if c, ok := m.cases[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockFormCaseRepository) UpdateStatus(ctx context.Context, id int64, status string, lockHolderID int64, expectedStatus string, expectedLockHolderID int64) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	c, ok := m.cases[id]
	if !ok {
		return secondary.ErrStaleCase
	}
	if c.Status != expectedStatus || c.ProcessingEmployeeID != expectedLockHolderID {
		return secondary.ErrStaleCase
	}
	c.Status = status
	c.ProcessingEmployeeID = lockHolderID
	return nil
}

func (m *mockFormCaseRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.cases, id)
	return nil
}

func (m *mockFormCaseRepository) DepartmentExists(ctx context.Context, departmentID int64) (bool, error) {
	return m.departments[departmentID], nil
}

// mockEmployeeRepository implements secondary.EmployeeRepository for testing.
type mockEmployeeRepository struct {
	employees map[int64]*secondary.EmployeeRecord
	nextID    int64
	getErr    error
	createErr error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{
		employees: make(map[int64]*secondary.EmployeeRecord),
		nextID:    100,
	}
}

func (m *mockEmployeeRepository) add(id int64, role string, departmentID int64) {
	m.employees[id] = &secondary.EmployeeRecord{
		ID:           id,
		Name:         fmt.Sprintf("Employee %d", id),
		Role:         role,
		DepartmentID: departmentID,
	}
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id int64) (*secondary.EmployeeRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.employees[id], nil
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee *secondary.EmployeeRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	employee.ID = m.nextID
	m.nextID++
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockEmployeeRepository) List(ctx context.Context) ([]*secondary.EmployeeRecord, error) {
	var result []*secondary.EmployeeRecord
	for id := int64(1); id < m.nextID; id++ {
		if e, ok := m.employees[id]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

// mockAttachmentRepository implements secondary.AttachmentRepository for testing.
type mockAttachmentRepository struct {
	attachments map[int64]*secondary.AttachmentRecord
	nextID      int64

	createErr    error
	updateKeyErr error
	deleteErr    error

	countCalls  int
	deleteCalls []int64
}

func newMockAttachmentRepository() *mockAttachmentRepository {
	return &mockAttachmentRepository{
		attachments: make(map[int64]*secondary.AttachmentRecord),
		nextID:      1,
	}
}

func (m *mockAttachmentRepository) Create(ctx context.Context, record *secondary.AttachmentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	record.ID = m.nextID
	m.nextID++
	m.attachments[record.ID] = record
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id int64) (*secondary.AttachmentRecord, error) {
	return m.attachments[id], nil
}

func (m *mockAttachmentRepository) GetByCaseID(ctx context.Context, caseID int64) ([]*secondary.AttachmentRecord, error) {
	var result []*secondary.AttachmentRecord
	for id := int64(1); id < m.nextID; id++ {
		if a, ok := m.attachments[id]; ok && a.FormCaseID == caseID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAttachmentRepository) CountFinalized(ctx context.Context, caseID int64) (int, error) {
	m.countCalls++
	n := 0
	for _, a := range m.attachments {
		if a.FormCaseID == caseID && attachment.Finalized(a.StorageKey) {
			n++
		}
	}
	return n, nil
}

func (m *mockAttachmentRepository) UpdateStorageKey(ctx context.Context, id int64, storageKey string) error {
	if m.updateKeyErr != nil {
		return m.updateKeyErr
	}
	if a, ok := m.attachments[id]; ok {
		a.StorageKey = storageKey
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.attachments, id)
	return nil
}

// mockAttachmentStorage implements secondary.AttachmentStorage for testing.
type mockAttachmentStorage struct {
	files map[string][]byte

	saveErr error
	openErr error

	deleteCalls []string
}

func newMockAttachmentStorage() *mockAttachmentStorage {
	return &mockAttachmentStorage{files: make(map[string][]byte)}
}

func (m *mockAttachmentStorage) Save(ctx context.Context, caseID, attachmentID int64, content io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("cases/%d/%d.pdf", caseID, attachmentID)
	m.files[key] = data
	return key, nil
}

func (m *mockAttachmentStorage) Delete(ctx context.Context, key string) error {
	m.deleteCalls = append(m.deleteCalls, key)
	delete(m.files, key)
	return nil
}

func (m *mockAttachmentStorage) OpenRead(ctx context.Context, key string) (io.ReadCloser, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	data, ok := m.files[key]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", key, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// mockClarificationRepository implements secondary.ClarificationRepository for testing.
type mockClarificationRepository struct {
	messages  []*secondary.ClarificationRecord
	nextID    int64
	createErr error
}

func newMockClarificationRepository() *mockClarificationRepository {
	return &mockClarificationRepository{nextID: 1}
}

func (m *mockClarificationRepository) Create(ctx context.Context, record *secondary.ClarificationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	record.ID = m.nextID
	m.nextID++
	m.messages = append(m.messages, record)
	return nil
}

func (m *mockClarificationRepository) GetByCaseID(ctx context.Context, caseID int64) ([]*secondary.ClarificationRecord, error) {
	var result []*secondary.ClarificationRecord
	for _, msg := range m.messages {
		if msg.FormCaseID == caseID {
			result = append(result, msg)
		}
	}
	return result, nil
}

// mockDepartmentRepository implements secondary.DepartmentRepository for testing.
type mockDepartmentRepository struct {
	departments map[int64]*secondary.DepartmentRecord
	listErr     error
}

func newMockDepartmentRepository() *mockDepartmentRepository {
	return &mockDepartmentRepository{
		departments: map[int64]*secondary.DepartmentRecord{
			1: {ID: 1, Name: "Benefits"},
			2: {ID: 2, Name: "Costs"},
		},
	}
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*secondary.DepartmentRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.DepartmentRecord
	for id := int64(1); id <= int64(len(m.departments)); id++ {
		if d, ok := m.departments[id]; ok {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id int64) (*secondary.DepartmentRecord, error) {
	return m.departments[id], nil
}
