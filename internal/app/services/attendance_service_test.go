package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandogan/registrar/internal/app/models/dto"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

type attendanceFixture struct {
	attendance *fakeAttendanceStore
	students   *fakeStudentStore
	courses    *fakeCourseStore
	svc        *AttendanceService
}

func newAttendanceFixture(t *testing.T) (*attendanceFixture, int64, int64) {
	t.Helper()
	ctx := context.Background()

	f := &attendanceFixture{
		attendance: newFakeAttendanceStore(),
		students:   newFakeStudentStore(),
		courses:    newFakeCourseStore(),
	}
	f.svc = NewAttendanceService(f.attendance, f.students, f.courses)

	student, err := NewStudentService(f.students).CreateStudent(ctx,
		newStudentRequest("Ada", "Lovelace", "ada@school.edu", "S-1001"))
	require.NoError(t, err)

	course, err := NewCourseService(f.courses).CreateCourse(ctx,
		newCourseRequest("CS101", "Intro to Computer Science", 3))
	require.NoError(t, err)

	return f, student.ID, course.ID
}

func TestRecordAttendance(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	record, err := f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "PRESENT",
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, "2026-09-01", record.Date)
	assert.Equal(t, "PRESENT", record.Status)
	assert.Equal(t, "Ada Lovelace", record.StudentName)
	assert.Equal(t, "CS101", record.CourseCode)
}

func TestRecordAttendanceDuplicateDate(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	_, err := f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "PRESENT",
	})
	require.NoError(t, err)

	// Same (student, course, date) is rejected even with another status
	_, err = f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "LATE",
	})
	assert.ErrorIs(t, err, apperrors.ErrAttendanceAlreadyRecorded)
	assert.Len(t, f.attendance.records, 1)

	// The next day is fine
	_, err = f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-02",
		Status:    "ABSENT",
	})
	require.NoError(t, err)
	assert.Len(t, f.attendance.records, 2)
}

func TestRecordAttendanceUnknownReferences(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	_, err := f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: 999,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "PRESENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  999,
		Date:      "2026-09-01",
		Status:    "PRESENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	assert.Empty(t, f.attendance.records)
}

func TestUpdateAttendanceStatusOnly(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	created, err := f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "ABSENT",
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateAttendance(ctx, created.ID, &dto.UpdateAttendanceRequest{
		Status: "EXCUSED",
	})
	require.NoError(t, err)

	assert.Equal(t, "EXCUSED", updated.Status)
	assert.Equal(t, studentID, updated.StudentID)
	assert.Equal(t, courseID, updated.CourseID)
	assert.Equal(t, "2026-09-01", updated.Date)
}

func TestGetAttendanceByCourseAndDate(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	second, err := NewStudentService(f.students).CreateStudent(ctx,
		newStudentRequest("Grace", "Hopper", "grace@school.edu", "S-1002"))
	require.NoError(t, err)

	for _, req := range []*dto.CreateAttendanceRequest{
		{StudentID: studentID, CourseID: courseID, Date: "2026-09-01", Status: "PRESENT"},
		{StudentID: second.ID, CourseID: courseID, Date: "2026-09-01", Status: "LATE"},
		{StudentID: studentID, CourseID: courseID, Date: "2026-09-02", Status: "PRESENT"},
	} {
		_, err := f.svc.RecordAttendance(ctx, req)
		require.NoError(t, err)
	}

	records, err := f.svc.GetAttendanceByCourseAndDate(ctx, courseID, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceSurvivesCourseDeletion(t *testing.T) {
	ctx := context.Background()
	f, studentID, courseID := newAttendanceFixture(t)

	created, err := f.svc.RecordAttendance(ctx, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      "2026-09-01",
		Status:    "PRESENT",
	})
	require.NoError(t, err)

	require.NoError(t, NewCourseService(f.courses).DeleteCourse(ctx, courseID))

	record, err := f.svc.GetAttendanceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, courseID, record.CourseID)
	assert.Empty(t, record.CourseCode)
	assert.Equal(t, "Ada Lovelace", record.StudentName)
}
