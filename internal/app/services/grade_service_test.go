package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

type gradeFixture struct {
	grades   *fakeGradeStore
	students *fakeStudentStore
	courses  *fakeCourseStore
	svc      *GradeService
}

func newGradeFixture(t *testing.T) (*gradeFixture, int64, int64) {
	t.Helper()
	ctx := context.Background()

	f := &gradeFixture{
		grades:   newFakeGradeStore(),
		students: newFakeStudentStore(),
		courses:  newFakeCourseStore(),
	}
	f.svc = NewGradeService(f.grades, f.students, f.courses)

	studentSvc := NewStudentService(f.students)
	student, err := studentSvc.CreateStudent(ctx, newStudentRequest("Ada", "Lovelace", "ada@school.edu", "S-1001"))
	require.NoError(t, err)

	courseSvc := NewCourseService(f.courses)
	course, err := courseSvc.CreateCourse(ctx, newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)

	return f, student.ID, course.ID
}

func TestCreateGrade(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newGradeFixture(t)

	grade, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "A",
		AssessmentDate: strPtr("2026-03-15"),
	})
	require.NoError(t, err)

	assert.NotZero(t, grade.ID)
	assert.Equal(t, "Ada Lovelace", grade.StudentName)
	assert.Equal(t, "CS101", grade.CourseCode)
	assert.Equal(t, "Intro to Computer Science", grade.CourseName)
	require.NotNil(t, grade.AssessmentDate)
	assert.Equal(t, "2026-03-15", *grade.AssessmentDate)
}

func TestCreateGradeDuplicateAssessment(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newGradeFixture(t)

	_, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "A",
	})
	require.NoError(t, err)

	// Same (student, course, assessment type) is rejected
	_, err = f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "B",
	})
	assert.ErrorIs(t, err, apperrors.ErrGradeAlreadyExists)
	assert.Len(t, f.grades.grades, 1)

	// A different assessment type for the same pair is fine
	_, err = f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "FINAL",
		GradeValue:     "A-",
	})
	require.NoError(t, err)
	assert.Len(t, f.grades.grades, 2)
}

func TestCreateGradeUnknownStudent(t *testing.T) {
	ctx := context.Background()
	f, _, courseID := newGradeFixture(t)

	_, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      999,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "A",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, f.grades.grades)
}

func TestCreateGradeUnknownCourse(t *testing.T) {
	ctx := context.Background()
	f, studentID, _ := newGradeFixture(t)

	_, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       999,
		AssessmentType: "MIDTERM",
		GradeValue:     "A",
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, f.grades.grades)
}

func TestUpdateGradeOutcomeFieldsOnly(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newGradeFixture(t)

	created, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "B",
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateGrade(ctx, created.ID, &dto.UpdateGradeRequest{
		GradeValue:     strPtr("A"),
		AssessmentDate: strPtr("2026-03-20"),
		Comments:       strPtr("Regrade after appeal"),
	})
	require.NoError(t, err)

	assert.Equal(t, "A", updated.GradeValue)
	assert.Equal(t, studentID, updated.StudentID)
	assert.Equal(t, courseID, updated.CourseID)
	assert.Equal(t, "MIDTERM", updated.AssessmentType)
	require.NotNil(t, updated.Comments)
	assert.Equal(t, "Regrade after appeal", *updated.Comments)
}

func TestGradeSurvivesStudentDeletion(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newGradeFixture(t)

	created, err := f.svc.CreateGrade(ctx, &dto.CreateGradeRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: "MIDTERM",
		GradeValue:     "A",
	})
	require.NoError(t, err)

	studentSvc := NewStudentService(f.students)
	require.NoError(t, studentSvc.DeleteStudent(ctx, studentID))

	// The grade remains readable; the student display field goes empty
	grade, err := f.svc.GetGradeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, studentID, grade.StudentID)
	assert.Empty(t, grade.StudentName)
	assert.Equal(t, "CS101", grade.CourseCode)
}

func TestGetGradesByStudentUnknownStudent(t *testing.T) {
	ctx := context.Background()
	f, _, _ := newGradeFixture(t)

	_, err := f.svc.GetGradesByStudent(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetGradesByStudentAndCourse(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newGradeFixture(t)

	courseSvc := NewCourseService(f.courses)
	other, err := courseSvc.CreateCourse(ctx, newCourseRequest("MATH201", "Linear Algebra", 4))
	require.NoError(t, err)

	for _, req := range []*dto.CreateGradeRequest{
		{StudentID: studentID, CourseID: courseID, AssessmentType: "MIDTERM", GradeValue: "A"},
		{StudentID: studentID, CourseID: courseID, AssessmentType: "FINAL", GradeValue: "A-"},
		{StudentID: studentID, CourseID: other.ID, AssessmentType: "MIDTERM", GradeValue: "B+"},
	} {
		_, err := f.svc.CreateGrade(ctx, req)
		require.NoError(t, err)
	}

	grades, err := f.svc.GetGradesByStudentAndCourse(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.Len(t, grades, 2)

	all, err := f.svc.GetGradesByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
