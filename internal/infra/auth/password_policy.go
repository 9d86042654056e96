package auth

import (
	"unicode"
	"unicode/utf8"

	"swiftauth/config"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	defaultMaxPasswordLength = 72
)

type passwordPolicy struct {
	rules config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the policy from passwordStrength, falling back to length-only rules.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	rules := config.PasswordStrengthConfig{}
	if cfg != nil && cfg.PasswordStrength != nil {
		rules = *cfg.PasswordStrength
	}
	if rules.MinLength <= 0 {
		rules.MinLength = defaultMinPasswordLength
	}
	if rules.MaxLength <= 0 {
		rules.MaxLength = defaultMaxPasswordLength
	}

	return &passwordPolicy{rules: rules}
}

func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.rules.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if len(password) > p.rules.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case p.rules.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain an uppercase letter")
	case p.rules.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a lowercase letter")
	case p.rules.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a number")
	case p.rules.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a special character")
	}

	return nil
}
