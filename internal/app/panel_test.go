package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/semla/internal/models"
)

func TestListPanel_RanksByTotalDescending(t *testing.T) {
	store := new(MockStore)
	svc := &Service{Store: store}
	admin := &models.User{ID: 1, Name: "Boss", Role: models.RoleAdmin}

	applicants := []models.Applicant{
		{ID: 1, Name: "Alice", JobID: 10, Status: models.StatusInterview, CreatedAt: 100},
		{ID: 2, Name: "Bob", JobID: 10, Status: models.StatusInterview, CreatedAt: 200},
		{ID: 3, Name: "Carol", JobID: 10, Status: models.StatusInterview, CreatedAt: 300},
	}
	evaluations := map[int64]*models.Evaluation{
		1: {ApplicationID: 1, WrittenExam: intPtr(20)},
		2: {ApplicationID: 2, WrittenExam: intPtr(30)},
		3: {ApplicationID: 3, WrittenExam: intPtr(12), TechnicalViva: intPtr(8)},
	}

	store.On("ListPanelApplications", (*int64)(nil)).Return(applicants, nil).Once()
	store.On("ListEvaluations", []int64{1, 2, 3}).Return(evaluations, nil).Once()
	store.On("ListAssignments", []int64{1, 2, 3}).
		Return(map[int64][]models.Interviewer{}, nil).Once()
	store.On("ListJobs").Return([]models.Job{{ID: 10, Title: "Backend Engineer"}}, nil).Once()

	groups, err := svc.ListPanel(admin, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 3)

	assert.Equal(t, "Backend Engineer", groups[0].JobTitle)

	// Bob leads with 30; Alice and Carol tie at 20 and keep creation order
	assert.Equal(t, "Bob", groups[0].Rows[0].Applicant.Name)
	assert.Equal(t, 30, groups[0].Rows[0].Total)
	assert.Equal(t, "Alice", groups[0].Rows[1].Applicant.Name)
	assert.Equal(t, "Carol", groups[0].Rows[2].Applicant.Name)

	store.AssertExpectations(t)
}

func TestListPanel_GroupsByJob(t *testing.T) {
	store := new(MockStore)
	svc := &Service{Store: store}
	admin := &models.User{ID: 1, Name: "Boss", Role: models.RoleAdmin}

	applicants := []models.Applicant{
		{ID: 1, Name: "Alice", JobID: 20, Status: models.StatusInterview},
		{ID: 2, Name: "Bob", JobID: 10, Status: models.StatusInterview},
		{ID: 3, Name: "Carol", JobID: 20, Status: models.StatusSelected},
	}

	store.On("ListPanelApplications", (*int64)(nil)).Return(applicants, nil).Once()
	store.On("ListEvaluations", []int64{1, 2, 3}).
		Return(map[int64]*models.Evaluation{}, nil).Once()
	store.On("ListAssignments", []int64{1, 2, 3}).
		Return(map[int64][]models.Interviewer{}, nil).Once()
	store.On("ListJobs").Return([]models.Job{
		{ID: 10, Title: "Backend Engineer"},
		{ID: 20, Title: "Data Analyst"},
	}, nil).Once()

	groups, err := svc.ListPanel(admin, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, int64(10), groups[0].JobID)
	assert.Len(t, groups[0].Rows, 1)
	assert.Equal(t, int64(20), groups[1].JobID)
	assert.Len(t, groups[1].Rows, 2)
}

func TestListPanel_NonAdminSeesOnlyAssignments(t *testing.T) {
	store := new(MockStore)
	svc := &Service{Store: store}
	caller := &models.User{ID: 42, Name: "Vera", Role: models.RoleInterviewAdmin}

	applicants := []models.Applicant{
		{ID: 1, Name: "Alice", JobID: 10, Status: models.StatusInterview},
		{ID: 2, Name: "Bob", JobID: 10, Status: models.StatusInterview},
	}

	store.On("ListPanelApplications", (*int64)(nil)).Return(applicants, nil).Once()
	store.On("ListAssignedApplicationIDs", int64(42)).Return([]int64{2}, nil).Once()
	store.On("ListEvaluations", []int64{2}).
		Return(map[int64]*models.Evaluation{}, nil).Once()
	store.On("ListAssignments", []int64{2}).
		Return(map[int64][]models.Interviewer{2: {{ID: 42, Name: "Vera"}}}, nil).Once()
	store.On("GetMarkingPermission", int64(42)).
		Return(&models.MarkingPermission{InterviewerID: 42, TechnicalViva: true}, nil).Once()
	store.On("ListJobs").Return([]models.Job{{ID: 10, Title: "Backend Engineer"}}, nil).Once()

	groups, err := svc.ListPanel(caller, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 1)

	row := groups[0].Rows[0]
	assert.Equal(t, "Bob", row.Applicant.Name)
	assert.Equal(t, models.SectionSet{TechnicalViva: true}, row.Writable)

	store.AssertExpectations(t)
}

func TestListPanel_HighlightsMarkedWritableSections(t *testing.T) {
	store := new(MockStore)
	svc := &Service{Store: store}
	caller := &models.User{ID: 42, Name: "Vera", Role: models.RoleInterviewAdmin}

	applicants := []models.Applicant{
		{ID: 1, Name: "Alice", JobID: 10, Status: models.StatusInterview},
	}
	evaluations := map[int64]*models.Evaluation{
		// written already marked, viva not yet
		1: {ApplicationID: 1, WrittenExam: intPtr(18)},
	}

	store.On("ListPanelApplications", (*int64)(nil)).Return(applicants, nil).Once()
	store.On("ListAssignedApplicationIDs", int64(42)).Return([]int64{1}, nil).Once()
	store.On("ListEvaluations", []int64{1}).Return(evaluations, nil).Once()
	store.On("ListAssignments", []int64{1}).
		Return(map[int64][]models.Interviewer{}, nil).Once()
	store.On("GetMarkingPermission", int64(42)).
		Return(&models.MarkingPermission{InterviewerID: 42, WrittenExam: true, TechnicalViva: true}, nil).Once()
	store.On("ListJobs").Return([]models.Job{{ID: 10, Title: "Backend Engineer"}}, nil).Once()

	groups, err := svc.ListPanel(caller, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 1)

	row := groups[0].Rows[0]
	assert.Equal(t, models.SectionSet{WrittenExam: true, TechnicalViva: true}, row.Writable)
	assert.Equal(t, models.SectionSet{WrittenExam: true}, row.Highlighted)
}

func TestListPanel_UnmarkedApplicantKeepsFullDenominator(t *testing.T) {
	store := new(MockStore)
	svc := &Service{Store: store}
	admin := &models.User{ID: 1, Name: "Boss", Role: models.RoleAdmin}

	applicants := []models.Applicant{
		{ID: 1, Name: "Alice", JobID: 10, Status: models.StatusInterview},
	}

	store.On("ListPanelApplications", (*int64)(nil)).Return(applicants, nil).Once()
	store.On("ListEvaluations", []int64{1}).
		Return(map[int64]*models.Evaluation{}, nil).Once()
	store.On("ListAssignments", []int64{1}).
		Return(map[int64][]models.Interviewer{}, nil).Once()
	store.On("ListJobs").Return([]models.Job{{ID: 10, Title: "Backend Engineer"}}, nil).Once()

	groups, err := svc.ListPanel(admin, nil)
	require.NoError(t, err)
	require.Len(t, groups[0].Rows, 1)

	assert.Equal(t, 0, groups[0].Rows[0].Total)
	assert.Equal(t, 50, groups[0].Rows[0].Max)
	assert.Nil(t, groups[0].Rows[0].Evaluation)
}
