package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dental-tracker-api/internal/apperror"
	"dental-tracker-api/internal/auth"
)

type Service interface {
	Register(dto RegisterDTO) error
	Login(dto LoginDTO) (*LoginResponse, error)
	VerifyEmail(dto VerifyEmailDTO) error
	ResetPassword(dto ResetPasswordDTO) error
	Profile(userID uuid.UUID) (*UserResponse, error)
	UpdateProfile(userID uuid.UUID, dto UpdateProfileDTO) (*UserResponse, error)
	ChangePassword(userID uuid.UUID, dto ChangePasswordDTO) error
}

type service struct {
	repo     Repository
	tokenTTL time.Duration
}

func NewService(repo Repository, tokenTTL time.Duration) Service {
	return &service{repo: repo, tokenTTL: tokenTTL}
}

func (s *service) Register(dto RegisterDTO) error {
	if err := validateEmail(dto.Email); err != nil {
		return err
	}
	if err := ValidatePassword(dto.Password); err != nil {
		return err
	}
	if dto.Password != dto.ConfirmPassword {
		return apperror.Validation("passwords do not match")
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return apperror.Internal("failed to check email", err)
	}
	if existing != nil {
		return apperror.Conflict("email is already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password", err)
	}

	u := User{
		ID:           uuid.New(),
		Email:        dto.Email,
		PasswordHash: string(hash),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		BirthDate:    dto.BirthDate.UTC(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(&u); err != nil {
		// the unique index backs up the pre-check under concurrent registration
		if isUniqueConstraintError(err) {
			return apperror.Conflict("email is already in use")
		}
		return apperror.Internal("failed to create user", err)
	}
	return nil
}

func (s *service) Login(dto LoginDTO) (*LoginResponse, error) {
	// one message for both unknown email and wrong password, so callers
	// cannot enumerate accounts
	invalid := apperror.Unauthorized("invalid email or password")

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if u == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, invalid
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Email, u.FirstName+" "+u.LastName, s.tokenTTL)
	if err != nil {
		return nil, apperror.Internal("failed to issue token", err)
	}

	return &LoginResponse{Token: token, User: *toResponse(u)}, nil
}

func (s *service) VerifyEmail(dto VerifyEmailDTO) error {
	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return apperror.Internal("failed to look up user", err)
	}
	if u == nil {
		return apperror.NotFound("no account found with that email")
	}
	return nil
}

func (s *service) ResetPassword(dto ResetPasswordDTO) error {
	if err := ValidatePassword(dto.NewPassword); err != nil {
		return err
	}
	if dto.NewPassword != dto.ConfirmPassword {
		return apperror.Validation("passwords do not match")
	}

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return apperror.Internal("failed to look up user", err)
	}
	if u == nil {
		return apperror.NotFound("no account found with that email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password", err)
	}

	u.PasswordHash = string(hash)
	now := time.Now().UTC()
	u.UpdatedAt = &now
	if err := s.repo.Update(u); err != nil {
		return apperror.Internal("failed to update password", err)
	}
	return nil
}

func (s *service) Profile(userID uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal("failed to load profile", err)
	}
	if u == nil {
		return nil, apperror.NotFound("user not found")
	}
	return toResponse(u), nil
}

func (s *service) UpdateProfile(userID uuid.UUID, dto UpdateProfileDTO) (*UserResponse, error) {
	if err := validateEmail(dto.Email); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal("failed to load profile", err)
	}
	if u == nil {
		return nil, apperror.NotFound("user not found")
	}

	if dto.Email != u.Email {
		existing, err := s.repo.FindByEmail(dto.Email)
		if err != nil {
			return nil, apperror.Internal("failed to check email", err)
		}
		if existing != nil {
			return nil, apperror.Conflict("email is already in use")
		}
	}

	u.Email = dto.Email
	u.FirstName = dto.FirstName
	u.LastName = dto.LastName
	u.BirthDate = dto.BirthDate.UTC()
	now := time.Now().UTC()
	u.UpdatedAt = &now

	if err := s.repo.Update(u); err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperror.Conflict("email is already in use")
		}
		return nil, apperror.Internal("failed to update profile", err)
	}
	return toResponse(u), nil
}

func (s *service) ChangePassword(userID uuid.UUID, dto ChangePasswordDTO) error {
	if err := ValidatePassword(dto.NewPassword); err != nil {
		return err
	}
	if dto.NewPassword != dto.ConfirmPassword {
		return apperror.Validation("passwords do not match")
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return apperror.Internal("failed to load profile", err)
	}
	if u == nil {
		return apperror.NotFound("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.CurrentPassword)); err != nil {
		return apperror.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password", err)
	}
	u.PasswordHash = string(hash)
	now := time.Now().UTC()
	u.UpdatedAt = &now
	if err := s.repo.Update(u); err != nil {
		return apperror.Internal("failed to update password", err)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperror.Validation("invalid email address")
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		BirthDate: u.BirthDate,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
