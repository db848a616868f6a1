package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

func newCourseRequest(code, name string, credits int) *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseCode: code,
		CourseName: name,
		Credits:    intPtr(credits),
	}
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseStore())

	course, err := svc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "CS101", course.CourseCode)
	assert.Equal(t, 3, course.Credits)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	ctx := context.Background()
	store := newFakeCourseStore()
	svc := NewCourseService(store)

	_, err := svc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)

	_, err = svc.CreateCourse(ctx, newCourseRequest("CS101", "Another Course", 4))
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeAlreadyExists)
	assert.Len(t, store.courses, 1)
}

func TestUpdateCoursePartial(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseStore())

	created, err := svc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		CourseName: strPtr("Foundations of Computing"),
	})
	require.NoError(t, err)

	assert.Equal(t, "CS101", updated.CourseCode)
	assert.Equal(t, "Foundations of Computing", updated.CourseName)
	assert.Equal(t, 3, updated.Credits)
}

func TestUpdateCourseSameCodeNoConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseStore())

	created, err := svc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)

	updated, err := svc.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{
		CourseCode: strPtr("CS101"),
		Credits:    intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Credits)
}

func TestUpdateCourseCodeConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseStore())

	_, err := svc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)
	second, err := svc.CreateCourse(ctx, newCourseRequest("MATH201", "Linear Algebra", 4))
	require.NoError(t, err)

	_, err = svc.UpdateCourse(ctx, second.ID, &dto.UpdateCourseRequest{
		CourseCode: strPtr("CS101"),
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseCodeAlreadyExists)
}

func TestDeleteCourseNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseStore())

	assert.ErrorIs(t, svc.DeleteCourse(ctx, 99), apperrors.ErrCourseNotFound)
}
