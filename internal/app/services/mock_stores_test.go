package services

import (
	"context"
	"sync"
	"time"

	"github.com/tandogan/registrar/internal/app/models"
	"github.com/tandogan/registrar/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. They mirror the
// repository semantics: not-found sentinels on misses and conflict
// sentinels on duplicate keys.

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range s.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.StudentIDNumber == student.StudentIDNumber {
			return apperrors.ErrStudentNumberAlreadyExists
		}
	}
	s.nextID++
	student.ID = s.nextID
	copied := *student
	s.students[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range s.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	all := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		copied := *student
		all = append(all, &copied)
	}
	return all, nil
}

func (s *fakeStudentStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, student := range s.students {
		if student.Email == email && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) StudentNumberExists(_ context.Context, number string, excludeID int64) (bool, error) {
	for _, student := range s.students {
		if student.StudentIDNumber == number && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	s.students[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, existing := range s.courses {
		if existing.CourseCode == course.CourseCode {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}
	s.nextID++
	course.ID = s.nextID
	copied := *course
	s.courses[course.ID] = &copied
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		copied := *course
		all = append(all, &copied)
	}
	return all, nil
}

func (s *fakeCourseStore) CodeExists(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, course := range s.courses {
		if course.CourseCode == code && course.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	copied := *course
	s.courses[course.ID] = &copied
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

type fakeScheduledClassStore struct {
	classes map[int64]*models.ScheduledClass
	nextID  int64
}

func newFakeScheduledClassStore() *fakeScheduledClassStore {
	return &fakeScheduledClassStore{classes: make(map[int64]*models.ScheduledClass)}
}

func (s *fakeScheduledClassStore) Create(_ context.Context, class *models.ScheduledClass) error {
	s.nextID++
	class.ID = s.nextID
	copied := *class
	s.classes[class.ID] = &copied
	return nil
}

func (s *fakeScheduledClassStore) GetByID(_ context.Context, id int64) (*models.ScheduledClass, error) {
	class, ok := s.classes[id]
	if !ok {
		return nil, apperrors.ErrScheduledClassNotFound
	}
	copied := *class
	return &copied, nil
}

func (s *fakeScheduledClassStore) GetAll(_ context.Context) ([]*models.ScheduledClass, error) {
	all := make([]*models.ScheduledClass, 0, len(s.classes))
	for _, class := range s.classes {
		copied := *class
		all = append(all, &copied)
	}
	return all, nil
}

func (s *fakeScheduledClassStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.ScheduledClass, error) {
	var matched []*models.ScheduledClass
	for _, class := range s.classes {
		if class.CourseID == courseID {
			copied := *class
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeScheduledClassStore) GetByDayOfWeek(_ context.Context, day string) ([]*models.ScheduledClass, error) {
	var matched []*models.ScheduledClass
	for _, class := range s.classes {
		if class.DayOfWeek == day {
			copied := *class
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeScheduledClassStore) Update(_ context.Context, class *models.ScheduledClass) error {
	if _, ok := s.classes[class.ID]; !ok {
		return apperrors.ErrScheduledClassNotFound
	}
	copied := *class
	s.classes[class.ID] = &copied
	return nil
}

func (s *fakeScheduledClassStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.classes[id]; !ok {
		return apperrors.ErrScheduledClassNotFound
	}
	delete(s.classes, id)
	return nil
}

type fakeGradeStore struct {
	grades map[int64]*models.Grade
	nextID int64
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{grades: make(map[int64]*models.Grade)}
}

func (s *fakeGradeStore) Create(_ context.Context, grade *models.Grade) error {
	for _, existing := range s.grades {
		if existing.StudentID == grade.StudentID &&
			existing.CourseID == grade.CourseID &&
			existing.AssessmentType == grade.AssessmentType {
			return apperrors.ErrGradeAlreadyExists
		}
	}
	s.nextID++
	grade.ID = s.nextID
	copied := *grade
	s.grades[grade.ID] = &copied
	return nil
}

func (s *fakeGradeStore) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := s.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	copied := *grade
	return &copied, nil
}

func (s *fakeGradeStore) GetAll(_ context.Context) ([]*models.Grade, error) {
	all := make([]*models.Grade, 0, len(s.grades))
	for _, grade := range s.grades {
		copied := *grade
		all = append(all, &copied)
	}
	return all, nil
}

func (s *fakeGradeStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Grade, error) {
	var matched []*models.Grade
	for _, grade := range s.grades {
		if grade.StudentID == studentID {
			copied := *grade
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeGradeStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.Grade, error) {
	var matched []*models.Grade
	for _, grade := range s.grades {
		if grade.CourseID == courseID {
			copied := *grade
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeGradeStore) GetByStudentAndCourse(_ context.Context, studentID, courseID int64) ([]*models.Grade, error) {
	var matched []*models.Grade
	for _, grade := range s.grades {
		if grade.StudentID == studentID && grade.CourseID == courseID {
			copied := *grade
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeGradeStore) Exists(_ context.Context, studentID, courseID int64, assessmentType string) (bool, error) {
	for _, grade := range s.grades {
		if grade.StudentID == studentID && grade.CourseID == courseID && grade.AssessmentType == assessmentType {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeGradeStore) Update(_ context.Context, grade *models.Grade) error {
	if _, ok := s.grades[grade.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	copied := *grade
	s.grades[grade.ID] = &copied
	return nil
}

func (s *fakeGradeStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.grades[id]; !ok {
		return apperrors.ErrGradeNotFound
	}
	delete(s.grades, id)
	return nil
}

type fakeAttendanceStore struct {
	records map[int64]*models.AttendanceRecord
	nextID  int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: make(map[int64]*models.AttendanceRecord)}
}

func (s *fakeAttendanceStore) Create(_ context.Context, record *models.AttendanceRecord) error {
	for _, existing := range s.records {
		if existing.StudentID == record.StudentID &&
			existing.CourseID == record.CourseID &&
			existing.Date.Equal(record.Date) {
			return apperrors.ErrAttendanceAlreadyRecorded
		}
	}
	s.nextID++
	record.ID = s.nextID
	copied := *record
	s.records[record.ID] = &copied
	return nil
}

func (s *fakeAttendanceStore) GetByID(_ context.Context, id int64) (*models.AttendanceRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrAttendanceRecordNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *fakeAttendanceStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	var matched []*models.AttendanceRecord
	for _, record := range s.records {
		if record.StudentID == studentID {
			copied := *record
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeAttendanceStore) GetByCourseID(_ context.Context, courseID int64) ([]*models.AttendanceRecord, error) {
	var matched []*models.AttendanceRecord
	for _, record := range s.records {
		if record.CourseID == courseID {
			copied := *record
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeAttendanceStore) GetByStudentAndCourse(_ context.Context, studentID, courseID int64) ([]*models.AttendanceRecord, error) {
	var matched []*models.AttendanceRecord
	for _, record := range s.records {
		if record.StudentID == studentID && record.CourseID == courseID {
			copied := *record
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeAttendanceStore) GetByCourseAndDate(_ context.Context, courseID int64, date time.Time) ([]*models.AttendanceRecord, error) {
	var matched []*models.AttendanceRecord
	for _, record := range s.records {
		if record.CourseID == courseID && record.Date.Equal(date) {
			copied := *record
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (s *fakeAttendanceStore) Exists(_ context.Context, studentID, courseID int64, date time.Time) (bool, error) {
	for _, record := range s.records {
		if record.StudentID == studentID && record.CourseID == courseID && record.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeAttendanceStore) Update(_ context.Context, record *models.AttendanceRecord) error {
	if _, ok := s.records[record.ID]; !ok {
		return apperrors.ErrAttendanceRecordNotFound
	}
	copied := *record
	s.records[record.ID] = &copied
	return nil
}

func (s *fakeAttendanceStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.records[id]; !ok {
		return apperrors.ErrAttendanceRecordNotFound
	}
	delete(s.records, id)
	return nil
}

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return user.ID, nil
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range s.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeTokenRecord struct {
	userID     int64
	expiryDate time.Time
	isRevoked  bool
}

type fakeTokenStore struct {
	tokens map[string]*fakeTokenRecord
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*fakeTokenRecord)}
}

func (s *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	s.tokens[token] = &fakeTokenRecord{userID: userID, expiryDate: expiryDate}
	return nil
}

func (s *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	record, ok := s.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return record.userID, record.expiryDate, record.isRevoked, nil
}

func (s *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	record, ok := s.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	record.isRevoked = true
	return nil
}

func (s *fakeTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for _, record := range s.tokens {
		if record.userID == userID {
			record.isRevoked = true
		}
	}
	return nil
}

// fakeEmailSender records welcome emails instead of sending them.
// Sends happen on a goroutine, so access is guarded.
type fakeEmailSender struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeEmailSender) SendWelcomeEmail(toEmail, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, toEmail)
	return nil
}

func (s *fakeEmailSender) sentTo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}
