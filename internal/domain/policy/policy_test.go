package policy

import (
	"testing"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

var (
	anonymous = entity.Anonymous()
	member    = entity.NewCaller(2, []entity.UserRole{entity.UserRoleUser})
	admin     = entity.NewCaller(1, []entity.UserRole{entity.UserRoleAdmin, entity.UserRoleUser})
)

func TestPublicContentRules(t *testing.T) {
	for _, res := range []Resource{ResourceInstructor, ResourceSchedule, ResourceEvent, ResourceNews, ResourceGalleryItem} {
		t.Run(string(res), func(t *testing.T) {
			assert.True(t, CanPerform(anonymous, ActionList, res))
			assert.True(t, CanPerform(anonymous, ActionRead, res))
			for _, a := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
				assert.False(t, CanPerform(anonymous, a, res))
				assert.False(t, CanPerform(member, a, res))
				assert.True(t, CanPerform(admin, a, res))
			}
		})
	}
}

func TestContactMessageRules(t *testing.T) {
	assert.True(t, CanPerform(anonymous, ActionCreate, ResourceContactMessage))
	for _, a := range []Action{ActionList, ActionRead, ActionUpdateStatus, ActionDelete} {
		assert.False(t, CanPerform(member, a, ResourceContactMessage))
		assert.True(t, CanPerform(admin, a, ResourceContactMessage))
	}
}

func TestRegistrationRules(t *testing.T) {
	for _, a := range []Action{ActionList, ActionRead, ActionCreate, ActionUpdate} {
		assert.False(t, CanPerform(anonymous, a, ResourceRegistration))
		assert.True(t, CanPerform(member, a, ResourceRegistration))
	}
	assert.False(t, CanPerform(member, ActionListAll, ResourceRegistration))
	assert.False(t, CanPerform(member, ActionDelete, ResourceRegistration))
	assert.True(t, CanPerform(admin, ActionListAll, ResourceRegistration))
	assert.True(t, CanPerform(admin, ActionDelete, ResourceRegistration))
}

func TestUnknownActionIsDenied(t *testing.T) {
	assert.False(t, CanPerform(admin, ActionExport, ResourceNews))
	assert.ErrorIs(t, Authorize(admin, ActionExport, ResourceNews), entity.ErrForbidden)
}

func TestAuthorizeDistinguishesUnauthenticated(t *testing.T) {
	assert.NoError(t, Authorize(anonymous, ActionRead, ResourceNews))
	assert.ErrorIs(t, Authorize(anonymous, ActionCreate, ResourceRegistration), entity.ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(anonymous, ActionDelete, ResourceNews), entity.ErrUnauthenticated)
	assert.ErrorIs(t, Authorize(member, ActionDelete, ResourceNews), entity.ErrForbidden)
}

func TestCanAccessRegistration(t *testing.T) {
	own := &entity.Registration{ID: 5, UserID: member.UserID}
	other := &entity.Registration{ID: 6, UserID: 99}

	assert.True(t, CanAccessRegistration(member, own))
	assert.False(t, CanAccessRegistration(member, other))
	assert.True(t, CanAccessRegistration(admin, other))
	assert.False(t, CanAccessRegistration(anonymous, &entity.Registration{UserID: 0}))
}
