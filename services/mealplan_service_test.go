package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceCurrentKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewMealPlanService(db)

	week1 := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.ReplaceCurrent(user.ID, week1, validPlan(3))
	require.NoError(t, err)
	_, err = svc.ReplaceCurrent(user.ID, week2, validPlan(2))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	current, err := svc.GetCurrent(user.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.True(t, current.WeekStart.Equal(week2))

	var plan models.WeeklyMealPlan
	require.NoError(t, json.Unmarshal(current.Meals, &plan))
	assert.Len(t, plan.Meals, 2)
}

func TestGetCurrentPicksGreatestWeekStart(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewMealPlanService(db)

	// insert rows directly to simulate leftover plans from older deployments
	meals, err := json.Marshal(validPlan(1))
	require.NoError(t, err)
	older := models.MealPlan{UserID: user.ID, WeekStart: time.Date(2026, 7, 27, 0, 0, 0, 0, time.UTC), Meals: meals}
	newer := models.MealPlan{UserID: user.ID, WeekStart: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Meals: meals}
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&older).Error)

	current, err := svc.GetCurrent(user.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, newer.ID, current.ID)
}

func TestGetCurrentBreaksTiesByInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewMealPlanService(db)

	meals, err := json.Marshal(validPlan(1))
	require.NoError(t, err)
	week := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	first := models.MealPlan{UserID: user.ID, WeekStart: week, Meals: meals}
	second := models.MealPlan{UserID: user.ID, WeekStart: week, Meals: meals}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	current, err := svc.GetCurrent(user.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)
}

func TestGetCurrentNoPlan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewMealPlanService(db)

	current, err := svc.GetCurrent(user.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestMealPlanIsolation(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	svc := NewMealPlanService(db)

	_, err := svc.ReplaceCurrent(alice.ID, time.Now(), validPlan(2))
	require.NoError(t, err)

	current, err := svc.GetCurrent(bob.ID)
	require.NoError(t, err)
	assert.Nil(t, current)

	// replacing bob's plan must not touch alice's
	_, err = svc.ReplaceCurrent(bob.ID, time.Now(), validPlan(1))
	require.NoError(t, err)

	aliceCurrent, err := svc.GetCurrent(alice.ID)
	require.NoError(t, err)
	require.NotNil(t, aliceCurrent)
}
