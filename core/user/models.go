package user

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trackademic/trackademic/core"
)

var (
	// errors
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("User with this email already exists")
)

// User is an account holder. All tracked entities (courses, assignments,
// grades, goals, events) belong to exactly one User.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	StudentID    string    `json:"studentId,omitempty"`
	Major        string    `json:"major,omitempty"`
	Year         string    `json:"year,omitempty"`
	GPA          float64   `json:"gpa,omitempty"` // 4.0 scale
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"` // UTC
	UpdatedAt    time.Time `json:"updatedAt"` // UTC
	LastLogin    time.Time `json:"lastLogin"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(ctx, nu.Email)
}

// UpdateProfile defines what information may be provided to modify an existing User.
// Zero-valued fields are left untouched.
type UpdateProfile struct {
	Name            string   `json:"name"`
	Email           string   `json:"email" validate:"omitempty,email"`
	StudentID       string   `json:"studentId"`
	Major           string   `json:"major"`
	Year            string   `json:"year"`
	GPA             *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Password        string   `json:"password"`
	PasswordConfirm string   `json:"passwordConfirm" validate:"required_with=Password,eqfield=Password"`
}

func (up *UpdateProfile) Validate(ctx context.Context, origUsr User, validate *validator.Validate, svc *Service) error {
	up.Name = core.CleanString(up.Name)
	if up.Name == "" {
		up.Name = origUsr.Name
	}

	up.Email = core.CleanString(up.Email, true /* lower */)
	if up.Email == "" {
		up.Email = origUsr.Email
	}

	if err := validate.Struct(up); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(ctx, up.Email, origUsr)
}

// ResetUserPassword confirms a password reset initiated via email.
type ResetUserPassword struct {
	UID             string `json:"uid,omitempty" validate:"required"`
	Token           string `json:"token,omitempty" validate:"required"`
	Password        string `json:"password,omitempty" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm,omitempty" validate:"required,eqfield=Password"`
}

func (rp ResetUserPassword) Validate(validate *validator.Validate) error {
	return validate.Struct(rp)
}
