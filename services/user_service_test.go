package services

import (
	"testing"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	first, err := svc.Register("alice", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// the duplicate comes back from the unique index, not a pre-check, so
	// a lost race surfaces the same way
	_, err = svc.Register("alice", "different")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConflict), "duplicate username must map to conflict")
}

func TestDriverTranslatesUniqueViolations(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	recipeSvc := NewRecipeService(db)

	recipe, err := recipeSvc.Create(user.ID, pancakeInput())
	require.NoError(t, err)
	require.NoError(t, recipeSvc.Favorite(user.ID, recipe.ID))

	// a raw duplicate insert must come back as gorm.ErrDuplicatedKey,
	// which is what the conflict mapping in Favorite relies on
	dup := models.FavoriteRecipe{UserID: user.ID, RecipeID: recipe.ID}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("alice", "hunter22")
	require.NoError(t, err)

	token, err := svc.Authenticate("alice", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Authenticate("alice", "wrong")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindAuthentication))

	_, err = svc.Authenticate("nobody", "hunter22")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindAuthentication))
}

func TestOnboardingCompletion(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("alice", "hunter22")
	require.NoError(t, err)

	done, err := svc.OnboardingStatus(user.ID)
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, svc.CompleteOnboarding(user.ID))
	require.NoError(t, svc.CompleteOnboarding(user.ID)) // idempotent

	done, err = svc.OnboardingStatus(user.ID)
	require.NoError(t, err)
	assert.True(t, done)
}
