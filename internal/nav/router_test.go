package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modasmart/storefront/internal/models"
)

func TestRoute_Loading(t *testing.T) {
	t.Parallel()

	set := Route(models.Session{Loading: true})
	assert.Equal(t, []Screen{ScreenLoading}, set.Screens)
	assert.Equal(t, ScreenLoading, set.Initial)
}

func TestRoute_Unauthenticated(t *testing.T) {
	t.Parallel()

	set := Route(models.Session{})
	assert.Equal(t, []Screen{ScreenLogin}, set.Screens)
	assert.Empty(t, set.Notice)
}

func TestRoute_Admin(t *testing.T) {
	t.Parallel()

	set := Route(models.Session{User: &models.User{ID: "u"}, Role: models.RoleAdmin})
	assert.Equal(t, []Screen{ScreenHome, ScreenAdmin, ScreenLogin}, set.Screens)
	assert.Equal(t, ScreenHome, set.Initial)
	assert.True(t, set.Contains(ScreenAdmin))
	assert.False(t, set.Contains(ScreenClient))
}

func TestRoute_Client(t *testing.T) {
	t.Parallel()

	set := Route(models.Session{User: &models.User{ID: "u"}, Role: models.RoleClient})
	assert.Equal(t, []Screen{ScreenHome, ScreenClient, ScreenLogin}, set.Screens)
	assert.True(t, set.Contains(ScreenClient))
	assert.False(t, set.Contains(ScreenAdmin))
}

func TestRoute_InvalidRole(t *testing.T) {
	t.Parallel()

	for _, role := range []models.Role{"", "superuser"} {
		set := Route(models.Session{User: &models.User{ID: "u"}, Role: role})
		assert.Equal(t, []Screen{ScreenLogin}, set.Screens)
		assert.Equal(t, InvalidRoleNotice, set.Notice)
	}
}

func TestRoute_IsPure(t *testing.T) {
	t.Parallel()

	sessions := []models.Session{
		{},
		{Loading: true},
		{User: &models.User{ID: "u"}, Role: models.RoleAdmin},
		{User: &models.User{ID: "u"}, Role: models.RoleClient},
		{User: &models.User{ID: "u"}, Role: "bogus"},
	}
	for _, s := range sessions {
		assert.Equal(t, Route(s), Route(s))
	}
}
