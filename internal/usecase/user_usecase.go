package usecase

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// UpdateProfileInput lists every field a user may change about themselves.
// Email, role, rating and KYC status are deliberately absent.
type UpdateProfileInput struct {
	Name              *string
	Phone             *string
	AvatarURL         *string
	AcademicInterests *[]string
	Location          *entity.Location
	LibraryName       *string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.AcademicInterests != nil {
		user.AcademicInterests = *input.AcademicInterests
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.LibraryName != nil {
		if user.Role != entity.RoleLibrary {
			return nil, errors.BadRequest("Only library accounts have a library name", nil)
		}
		user.LibraryName = *input.LibraryName
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SubmitKYC attaches verification documents and resets the account to
// pending review.
func (uc *UserUseCase) SubmitKYC(ctx context.Context, userID string, documents []entity.KYCDocument) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleLibrary {
		return nil, errors.BadRequest("Only library accounts require KYC verification", nil)
	}
	if len(documents) == 0 {
		return nil, errors.BadRequest("At least one document is required", nil)
	}
	if user.KYCStatus == entity.KYCVerified {
		return nil, errors.Conflict("Account is already verified")
	}

	user.KYCDocuments = documents
	user.KYCStatus = entity.KYCPending
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ReviewKYC is the admin verdict on a pending submission.
func (uc *UserUseCase) ReviewKYC(ctx context.Context, userID, verdict string) error {
	if verdict != entity.KYCVerified && verdict != entity.KYCRejected {
		return errors.BadRequest("Verdict must be verified or rejected", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role != entity.RoleLibrary {
		return errors.BadRequest("Only library accounts have KYC submissions", nil)
	}
	if len(user.KYCDocuments) == 0 {
		return errors.BadRequest("No documents submitted for review", nil)
	}

	return uc.userRepo.UpdateKYCStatus(ctx, userID, verdict)
}

func (uc *UserUseCase) Deactivate(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.IsActive = false
	user.UpdatedAt = time.Now()

	return uc.userRepo.Update(ctx, user)
}
