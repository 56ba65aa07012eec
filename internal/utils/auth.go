package utils

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/linguadex-backend/internal/languages"
	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/normalization"
	"github.com/yungbote/linguadex-backend/internal/repos"
	"github.com/yungbote/linguadex-backend/internal/types"
)

func InputValidation(ctx context.Context, ffor string, userRepo repos.UserRepo, log *logger.Logger, user *types.User, username, password string) error {
	validatedFor := normalization.ParseInputString(ffor)
	if validatedFor == "" {
		return fmt.Errorf("For string is nil, needs to be login or registration")
	}
	switch validatedFor {
	case "registration":
		if err := handleRegisterInputValidation(ctx, userRepo, log, user); err != nil {
			return err
		}
	case "login":
		if err := handleLoginInputValidation(ctx, log, username, password); err != nil {
			return err
		}
	}
	return nil
}

func handleRegisterInputValidation(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
	if user == nil {
		return fmt.Errorf("No user given, cannot proceed with registration")
	}
	if user.Username == "" {
		return fmt.Errorf("A username is required to register")
	}
	usernameExists, err := userRepo.UsernameExists(ctx, nil, user.Username)
	if err != nil {
		return fmt.Errorf("Failed to check username")
	}
	if usernameExists {
		return fmt.Errorf("Username is already in use")
	}
	if user.Email == "" {
		return fmt.Errorf("An email is required to register")
	}
	emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return fmt.Errorf("Failed to check user email")
	}
	if emailExists {
		return fmt.Errorf("Email is already in use")
	}
	if user.Password == "" {
		return fmt.Errorf("A password is required to register")
	}
	if user.TargetLanguage == "" {
		return fmt.Errorf("A target language is required to register")
	}
	if !languages.IsSupported(user.TargetLanguage) {
		return fmt.Errorf("Unsupported target language code")
	}
	return nil
}

func handleLoginInputValidation(ctx context.Context, log *logger.Logger, username, password string) error {
	if username == "" {
		return fmt.Errorf("Username is required to login")
	}
	if password == "" {
		return fmt.Errorf("Password is required to login")
	}
	return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, user *types.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("Failed to hash password")
	}
	user.Password = string(hashedPassword)
	return nil
}

func NormalizeUserFields(ctx context.Context, user *types.User) {
	user.Username = normalization.ParseInputString(user.Username)
	user.Email = normalization.ParseInputString(user.Email)
	user.Password = normalization.TrimInputString(user.Password)
	user.NativeLanguage = normalization.ParseInputString(user.NativeLanguage)
	user.TargetLanguage = normalization.ParseInputString(user.TargetLanguage)
}
