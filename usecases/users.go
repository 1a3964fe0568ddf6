package usecases

import (
	"errors"
	"fmt"

	"imagemaker-server/entities"
	"imagemaker-server/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthenticated marks failed credential checks so the HTTP layer can
// answer 401 instead of a generic server error.
var ErrUnauthenticated = errors.New("invalid email or password")

// placeholderUserID stands in for the authenticated caller on profile
// updates. TODO: replace with the session user once token parsing carries
// identity into the handlers.
const placeholderUserID = "current_user_id_placeholder"

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type ProfilePreferences struct {
	Theme    *string `json:"theme,omitempty"`
	Language *string `json:"language,omitempty"`
}

type UpdateProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateUser hashes the password and writes the user together with its
// profile. Every persistence failure, duplicate email included, comes back
// as a failure value rather than an error.
func (uc *UserUseCase) CreateUser(email, password string, firstName, lastName *string) CreateUserResponse {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return CreateUserResponse{Success: false, Message: fmt.Sprintf("Failed to create user account: %v", err)}
	}

	user := &entities.User{Email: email, HashedPassword: string(hashed)}
	profile := &entities.Profile{FirstName: firstName, LastName: lastName}

	if err := uc.UserRepo.CreateWithProfile(user, profile); err != nil {
		return CreateUserResponse{Success: false, Message: fmt.Sprintf("Failed to create user account: %v", err)}
	}

	return CreateUserResponse{
		Success: true,
		Message: "User account created successfully.",
		UserID:  user.ID,
	}
}

// LoginUser checks the credentials and issues a session token. The token
// is a deterministic placeholder, not a signed credential.
func (uc *UserUseCase) LoginUser(email, password string) (*LoginResponse, error) {
	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, ErrUnauthenticated
	}
	return &LoginResponse{Token: generateToken(user.ID), UserID: user.ID}, nil
}

func generateToken(userID string) string {
	return "token_for_user_" + userID
}

// UpdateUserProfile overwrites the profile name fields and upserts the
// preferences row. A new email colliding with an existing account is a
// domain failure; anything else unexpected is downgraded to one too.
func (uc *UserUseCase) UpdateUserProfile(firstName, lastName, email *string, prefs ProfilePreferences) UpdateProfileResponse {
	if email != nil && *email != "" {
		existing, err := uc.UserRepo.GetByEmail(*email)
		if err != nil {
			return UpdateProfileResponse{Success: false, Message: fmt.Sprintf("Failed to update user profile. Error: %v", err)}
		}
		if existing != nil {
			return UpdateProfileResponse{Success: false, Message: "Email already exists."}
		}
	}

	if err := uc.UserRepo.UpdateProfile(placeholderUserID, firstName, lastName); err != nil {
		return UpdateProfileResponse{Success: false, Message: fmt.Sprintf("Failed to update user profile. Error: %v", err)}
	}
	if err := uc.UserRepo.UpsertPreferences(placeholderUserID, prefs.Theme, prefs.Language); err != nil {
		return UpdateProfileResponse{Success: false, Message: fmt.Sprintf("Failed to update user profile. Error: %v", err)}
	}

	return UpdateProfileResponse{Success: true, Message: "User profile updated successfully."}
}
