package services

import (
	"context"
	"fmt"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
	"github.com/delis/schoolhub/internal/pkg/auth"
)

type userService struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	teacherRepo repositories.ITeacherRepository
}

// NewUserService creates a new user service instance. The student and
// teacher repositories are needed for the cascading delete.
func NewUserService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	teacherRepo repositories.ITeacherRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
	}
}

// InsertUser creates a new user after checking that the username is free.
// The password is hashed before it reaches the store. The check and the
// insert are not atomic; the unique index on username backstops concurrent
// inserts.
func (s *userService) InsertUser(ctx context.Context, d dto.UserInsertDTO) (*models.User, error) {
	hashed, err := auth.HashPassword(d.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{Username: d.Username, Password: hashed}

	stored, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUsernameAlreadyExists, user.Username)
	}

	return s.userRepo.Insert(ctx, user)
}

// UpdateUser replaces an existing user record. The password is re-hashed
// from the submitted plaintext.
func (s *userService) UpdateUser(ctx context.Context, d dto.UserUpdateDTO) (*models.User, error) {
	hashed, err := auth.HashPassword(d.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{ID: d.ID, Username: d.Username, Password: hashed}

	stored, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrUserNotFound, user.ID)
	}

	return s.userRepo.Update(ctx, user)
}

// DeleteUser deletes a user and, first, any student or teacher record
// referencing it. The steps run strictly in sequence with no surrounding
// transaction: if a later step fails, the earlier deletes stay applied.
// A user is never removed while a student or teacher still references it.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: id=%d", apperrors.ErrUserNotFound, id)
	}

	student, err := s.studentRepo.GetByUserID(ctx, id)
	if err != nil {
		return err
	}
	if student != nil {
		if _, err := s.studentRepo.Delete(ctx, student.ID); err != nil {
			return err
		}
	}

	teacher, err := s.teacherRepo.GetByUserID(ctx, id)
	if err != nil {
		return err
	}
	if teacher != nil {
		if _, err := s.teacherRepo.Delete(ctx, teacher.ID); err != nil {
			return err
		}
	}

	_, err = s.userRepo.Delete(ctx, id)
	return err
}

// GetUserByID retrieves a user by id, promoting an absent row to a
// not-found error.
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrUserNotFound, id)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by exact username. An absent row
// returns nil without error.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// GetUsersByUsernameLike retrieves all users whose username begins with the
// given prefix.
func (s *userService) GetUsersByUsernameLike(ctx context.Context, prefix string) ([]*models.User, error) {
	return s.userRepo.GetByUsernameLike(ctx, prefix)
}

// GetAllUsers retrieves all users
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Login checks the submitted credentials. An unknown username and a wrong
// password are indistinguishable to the caller: both yield false. The error
// is non-nil only for store failures.
func (s *userService) Login(ctx context.Context, d dto.LoginDTO) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, d.Username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	return auth.CheckPassword(user.Password, d.Password), nil
}
