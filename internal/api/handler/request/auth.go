package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"eventdash/internal/domain"
)

// Lookahead requires stdlib-unsupported syntax, hence regexp2.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

type RegisterForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Phone           string `form:"phone"`
}

func (f *RegisterForm) Validate() error {
	err := validation.ValidateStruct(
		f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
		validation.Field(&f.ConfirmPassword, validation.Required),
		validation.Field(&f.FirstName, validation.Required),
		validation.Field(&f.LastName, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordExp.MatchString(f.Password); !ok {
		return errInvalidPassword
	}

	if f.Password != f.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}

// ProfileForm carries the account page fields. Everything is optional;
// blank fields are left out of the patch.
type ProfileForm struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	Email       string `form:"email"`
	Phone       string `form:"phone"`
	NewPassword string `form:"newPassword"`
}

func (f *ProfileForm) Validate() error {
	err := validation.ValidateStruct(
		f,
		validation.Field(&f.Email, is.Email),
	)
	if err != nil {
		return err
	}

	if f.NewPassword != "" {
		if ok, _ := passwordExp.MatchString(f.NewPassword); !ok {
			return errInvalidPassword
		}
	}

	return nil
}

// Input builds a sparse patch from the submitted fields only.
func (f *ProfileForm) Input() domain.UpdateUserInput {
	var input domain.UpdateUserInput
	if f.FirstName != "" {
		input.FirstName = &f.FirstName
	}
	if f.LastName != "" {
		input.LastName = &f.LastName
	}
	if f.Email != "" {
		input.Email = &f.Email
	}
	if f.Phone != "" {
		input.Phone = &f.Phone
	}
	if f.NewPassword != "" {
		input.Password = &f.NewPassword
	}

	return input
}
