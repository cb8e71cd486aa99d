package app

import (
	"github.com/stretchr/testify/mock"

	"github.com/shrimpsizemoose/semla/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) ApplyMigrations(dir string) error {
	return nil
}

func (m *MockStore) GetApplication(id int64) (*models.Applicant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Applicant), args.Error(1)
}

func (m *MockStore) ListPanelApplications(jobID *int64) ([]models.Applicant, error) {
	args := m.Called(jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Applicant), args.Error(1)
}

func (m *MockStore) MarkInterview(id int64, interviewDate *int64) error {
	args := m.Called(id, interviewDate)
	return args.Error(0)
}

func (m *MockStore) SetDecision(id int64, status models.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStore) SetInterviewDate(id int64, interviewDate *int64) error {
	args := m.Called(id, interviewDate)
	return args.Error(0)
}

func (m *MockStore) EndInterviews(jobID *int64) (int64, error) {
	args := m.Called(jobID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) GetEvaluation(applicationID int64) (*models.Evaluation, error) {
	args := m.Called(applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Evaluation), args.Error(1)
}

func (m *MockStore) ListEvaluations(applicationIDs []int64) (map[int64]*models.Evaluation, error) {
	args := m.Called(applicationIDs)
	if args.Get(0) == nil {
		return map[int64]*models.Evaluation{}, args.Error(1)
	}
	return args.Get(0).(map[int64]*models.Evaluation), args.Error(1)
}

func (m *MockStore) UpsertEvaluation(applicationID int64, patch models.EvaluationPatch) (*models.Evaluation, error) {
	args := m.Called(applicationID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Evaluation), args.Error(1)
}

func (m *MockStore) GetMarkingPermission(interviewerID int64) (*models.MarkingPermission, error) {
	args := m.Called(interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MarkingPermission), args.Error(1)
}

func (m *MockStore) SaveMarkingPermission(perm models.MarkingPermission) error {
	args := m.Called(perm)
	return args.Error(0)
}

func (m *MockStore) ReplaceAssignments(applicationID int64, interviewerIDs []int64) error {
	args := m.Called(applicationID, interviewerIDs)
	return args.Error(0)
}

func (m *MockStore) ListAssignedApplicationIDs(interviewerID int64) ([]int64, error) {
	args := m.Called(interviewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockStore) ListAssignments(applicationIDs []int64) (map[int64][]models.Interviewer, error) {
	args := m.Called(applicationIDs)
	if args.Get(0) == nil {
		return map[int64][]models.Interviewer{}, args.Error(1)
	}
	return args.Get(0).(map[int64][]models.Interviewer), args.Error(1)
}

func (m *MockStore) GetInterviewer(id int64) (*models.Interviewer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interviewer), args.Error(1)
}

func (m *MockStore) ListJobs() ([]models.Job, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockStore) RecordActivity(entry *models.ActivityEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}
