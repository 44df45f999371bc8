// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the active user's profile stored under [KeyProfile].
// It is shown in the UI and may be edited freely; editing it never changes
// the login [Credentials].
type Profile struct {
	// UserID links the profile to its Credentials record.
	UserID string `json:"userId,omitempty"`

	// Name is the display name.
	Name string `json:"nome"`

	// Email is the contact email. Login uses the email stored in Credentials.
	Email string `json:"email"`

	// Phone is optional.
	Phone string `json:"telefone,omitempty"`

	// Photo is a photo URL.
	Photo string `json:"foto,omitempty"`
}

// Credentials is the registered login record stored under [KeyCredentials].
type Credentials struct {
	// UserID links the credentials to the Profile.
	UserID string `json:"userId"`

	// Email is the login email.
	Email string `json:"email"`

	// Password is the stored password: the plain value, or a bcrypt hash when
	// password hashing is enabled.
	Password string `json:"senha"`
}

// SignUp is the registration form submitted by a new user.
type SignUp struct {
	Name                 string `json:"nome"`
	Email                string `json:"email"`
	Phone                string `json:"telefone"`
	Password             string `json:"senha"`
	PasswordConfirmation string `json:"confirmarSenha"`
}

// LoginRequest carries the login form values.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LegacyUser is the conflated profile/credentials record written by the
// first versions of the application under [KeyProfile].
type LegacyUser struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Phone    string `json:"telefone,omitempty"`
	Password string `json:"senha,omitempty"`
	Photo    string `json:"foto,omitempty"`
}
