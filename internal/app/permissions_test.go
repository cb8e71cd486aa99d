package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shrimpsizemoose/semla/internal/models"
)

func TestResolvePermissions(t *testing.T) {
	t.Run("admin bypasses stored grants", func(t *testing.T) {
		store := new(MockStore)
		svc := &Service{Store: store}

		perms, err := svc.ResolvePermissions(&models.User{ID: 1, Role: models.RoleAdmin})
		assert.NoError(t, err)
		assert.Equal(t, models.AllSections(), perms)

		store.AssertNotCalled(t, "GetMarkingPermission", mock.Anything)
	})

	t.Run("missing row fails closed", func(t *testing.T) {
		store := new(MockStore)
		svc := &Service{Store: store}

		store.On("GetMarkingPermission", int64(7)).Return(nil, nil).Once()

		perms, err := svc.ResolvePermissions(&models.User{ID: 7, Role: models.RoleInterviewAdmin})
		assert.NoError(t, err, "an absent grant is a denial, not an error")
		assert.False(t, perms.Any())

		store.AssertExpectations(t)
	})

	t.Run("stored row maps to section set", func(t *testing.T) {
		store := new(MockStore)
		svc := &Service{Store: store}

		store.On("GetMarkingPermission", int64(7)).
			Return(&models.MarkingPermission{InterviewerID: 7, WrittenExam: true, Project: true}, nil).Once()

		perms, err := svc.ResolvePermissions(&models.User{ID: 7, Role: models.RoleInterviewAdmin})
		assert.NoError(t, err)
		assert.Equal(t, models.SectionSet{WrittenExam: true, Project: true}, perms)

		store.AssertExpectations(t)
	})
}

func TestSetMarkingPermission(t *testing.T) {
	perm := models.MarkingPermission{InterviewerID: 7, TechnicalViva: true}

	t.Run("non-admin is rejected", func(t *testing.T) {
		store := new(MockStore)
		svc := &Service{Store: store}

		err := svc.SetMarkingPermission(&models.User{ID: 7, Role: models.RoleInterviewAdmin}, perm)
		assert.ErrorIs(t, err, ErrUnauthorized)

		store.AssertNotCalled(t, "SaveMarkingPermission", mock.Anything)
	})

	t.Run("admin saves the grant", func(t *testing.T) {
		store := new(MockStore)
		svc := &Service{Store: store}

		store.On("SaveMarkingPermission", perm).Return(nil).Once()

		err := svc.SetMarkingPermission(&models.User{ID: 1, Role: models.RoleAdmin}, perm)
		assert.NoError(t, err)

		store.AssertExpectations(t)
	})
}
