package services

import (
	"context"
	"strings"

	"github.com/delis/schoolhub/internal/app/models"
)

// In-memory repository fakes. Each one implements the corresponding
// repository interface over a map, mirroring the store contract: absent
// rows come back as nil records, deletes report whether a row went away,
// and an injected error simulates a store failure on any operation.

type fakeCityRepo struct {
	cities map[int64]*models.City
	nextID int64
	err    error
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: make(map[int64]*models.City), nextID: 1}
}

func (f *fakeCityRepo) Insert(ctx context.Context, city *models.City) (*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := &models.City{ID: f.nextID, Name: city.Name}
	f.cities[stored.ID] = stored
	f.nextID++
	return stored, nil
}

func (f *fakeCityRepo) Update(ctx context.Context, city *models.City) (*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.cities[city.ID]; !ok {
		return nil, nil
	}
	stored := &models.City{ID: city.ID, Name: city.Name}
	f.cities[city.ID] = stored
	return stored, nil
}

func (f *fakeCityRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.cities[id]; !ok {
		return false, nil
	}
	delete(f.cities, id)
	return true, nil
}

func (f *fakeCityRepo) GetByID(ctx context.Context, id int64) (*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cities[id], nil
}

func (f *fakeCityRepo) GetByName(ctx context.Context, name string) (*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.cities {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) GetAll(ctx context.Context) ([]*models.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]*models.City, 0, len(f.cities))
	for _, c := range f.cities {
		all = append(all, c)
	}
	return all, nil
}

type fakeSpecialityRepo struct {
	specialities map[int64]*models.Speciality
	nextID       int64
	err          error
}

func newFakeSpecialityRepo() *fakeSpecialityRepo {
	return &fakeSpecialityRepo{specialities: make(map[int64]*models.Speciality), nextID: 1}
}

func (f *fakeSpecialityRepo) Insert(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := &models.Speciality{ID: f.nextID, Name: speciality.Name}
	f.specialities[stored.ID] = stored
	f.nextID++
	return stored, nil
}

func (f *fakeSpecialityRepo) Update(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.specialities[speciality.ID]; !ok {
		return nil, nil
	}
	stored := &models.Speciality{ID: speciality.ID, Name: speciality.Name}
	f.specialities[speciality.ID] = stored
	return stored, nil
}

func (f *fakeSpecialityRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.specialities[id]; !ok {
		return false, nil
	}
	delete(f.specialities, id)
	return true, nil
}

func (f *fakeSpecialityRepo) GetByID(ctx context.Context, id int64) (*models.Speciality, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.specialities[id], nil
}

func (f *fakeSpecialityRepo) GetAll(ctx context.Context) ([]*models.Speciality, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]*models.Speciality, 0, len(f.specialities))
	for _, s := range f.specialities {
		all = append(all, s)
	}
	return all, nil
}

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
	err    error
	// deleteErr applies to Delete only, for cascade failure scenarios
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := &models.User{ID: f.nextID, Username: user.Username, Password: user.Password}
	f.users[stored.ID] = stored
	f.nextID++
	return stored, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[user.ID]; !ok {
		return nil, nil
	}
	stored := &models.User{ID: user.ID, Username: user.Username, Password: user.Password}
	f.users[user.ID] = stored
	return stored, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsernameLike(ctx context.Context, prefix string) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*models.User
	for _, u := range f.users {
		if strings.HasPrefix(u.Username, prefix) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	return f.GetByUsernameLike(ctx, "")
}

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
	err      error
	// deleteErr applies to Delete only, for cascade failure scenarios
	deleteErr error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentRepo) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *student
	stored.ID = f.nextID
	f.students[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.students[student.ID]; !ok {
		return nil, nil
	}
	stored := *student
	f.students[student.ID] = &stored
	return &stored, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.students[id]; !ok {
		return false, nil
	}
	delete(f.students, id)
	return true, nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.students[id], nil
}

func (f *fakeStudentRepo) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, st := range f.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) GetByLastname(ctx context.Context, prefix string) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*models.Student
	for _, st := range f.students {
		if strings.HasPrefix(st.Lastname, prefix) {
			matched = append(matched, st)
		}
	}
	return matched, nil
}

type fakeTeacherRepo struct {
	teachers map[int64]*models.Teacher
	nextID   int64
	err      error
	// deleteErr applies to Delete only, for cascade failure scenarios
	deleteErr error
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{teachers: make(map[int64]*models.Teacher), nextID: 1}
}

func (f *fakeTeacherRepo) Insert(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *teacher
	stored.ID = f.nextID
	f.teachers[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.teachers[teacher.ID]; !ok {
		return nil, nil
	}
	stored := *teacher
	f.teachers[teacher.ID] = &stored
	return &stored, nil
}

func (f *fakeTeacherRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.teachers[id]; !ok {
		return false, nil
	}
	delete(f.teachers, id)
	return true, nil
}

func (f *fakeTeacherRepo) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.teachers[id], nil
}

func (f *fakeTeacherRepo) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, tc := range f.teachers {
		if tc.UserID == userID {
			return tc, nil
		}
	}
	return nil, nil
}

func (f *fakeTeacherRepo) GetByLastname(ctx context.Context, prefix string) ([]*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*models.Teacher
	for _, tc := range f.teachers {
		if strings.HasPrefix(tc.Lastname, prefix) {
			matched = append(matched, tc)
		}
	}
	return matched, nil
}
