package controllers

import (
	courseModels "crh/models/course"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgressPartialCompletion(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "partial@test.com")
	course, lessons := createTestCourse(t, db, "Go Basics", false, 3)
	enrollTestUser(t, db, user.ID, course.ID)

	for _, lesson := range lessons[:2] {
		_, err := markLessonComplete(user.ID, lesson)
		require.NoError(t, err)
	}

	// 2 of 3 rounds up to 67
	assert.Equal(t, 67, computeProgress(user.ID, course.ID))
}

func TestComputeProgressEmptyCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "empty@test.com")
	course, _ := createTestCourse(t, db, "Empty Course", false, 0)
	enrollTestUser(t, db, user.ID, course.ID)

	assert.Equal(t, 0, computeProgress(user.ID, course.ID))
}

func TestComputeProgressIgnoresDeletedLessons(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "deleted@test.com")
	course, lessons := createTestCourse(t, db, "Shrinking Course", false, 4)
	enrollTestUser(t, db, user.ID, course.ID)

	_, err := markLessonComplete(user.ID, lessons[0])
	require.NoError(t, err)

	// Removing a lesson changes the denominator immediately
	require.NoError(t, db.Model(&lessons[3]).Update("is_deleted", true).Error)

	// 1 of 3 remaining rounds to 33
	assert.Equal(t, 33, computeProgress(user.ID, course.ID))
}

func TestMarkLessonCompleteRequiresEnrollment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "noenroll@test.com")
	_, lessons := createTestCourse(t, db, "Locked Course", false, 2)

	_, err := markLessonComplete(user.ID, lessons[0])
	assert.ErrorIs(t, err, errNotEnrolled)

	// No progress row should have been written
	var count int64
	db.Model(&courseModels.LessonProgress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestMarkLessonCompleteIdempotent(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "idem@test.com")
	course, lessons := createTestCourse(t, db, "Repeat Course", false, 2)
	enrollTestUser(t, db, user.ID, course.ID)

	first, err := markLessonComplete(user.ID, lessons[0])
	require.NoError(t, err)

	second, err := markLessonComplete(user.ID, lessons[0])
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkLessonCompleteRepeatsAfterEnrollmentCompleted(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "revisit@test.com")
	course, lessons := createTestCourse(t, db, "Finished Twice", false, 2)
	enrollTestUser(t, db, user.ID, course.ID)

	for _, lesson := range lessons {
		_, err := markLessonComplete(user.ID, lesson)
		require.NoError(t, err)
		refreshEnrollmentProgress(user.ID, course.ID)
	}

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	require.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)

	// A second tab re-marking the final lesson must still succeed
	_, err := markLessonComplete(user.ID, lessons[1])
	require.NoError(t, err)

	var count int64
	db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRefreshEnrollmentCompletesAtFullProgress(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "finish@test.com")
	course, lessons := createTestCourse(t, db, "Short Course", false, 4)
	enrollTestUser(t, db, user.ID, course.ID)

	for i, lesson := range lessons {
		_, err := markLessonComplete(user.ID, lesson)
		require.NoError(t, err)
		refreshEnrollmentProgress(user.ID, course.ID)

		var enrollment courseModels.Enrollment
		require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)

		if i < len(lessons)-1 {
			assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)
			assert.Less(t, enrollment.Progress, 100)
		} else {
			assert.Equal(t, courseModels.EnrollmentCompleted, enrollment.Status)
			assert.Equal(t, 100, enrollment.Progress)
			require.NotNil(t, enrollment.CompletedAt)
			assert.WithinDuration(t, time.Now(), *enrollment.CompletedAt, 5*time.Second)
		}
	}
}
