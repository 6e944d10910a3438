package services

import (
	"time"

	"hustled_backend/internal/models"
	"hustled_backend/internal/repositories"
	"hustled_backend/internal/services/dto"
	"hustled_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const dateOfBirthLayout = "2006-01-02"

type CandidateProfileService interface {
	SaveProfile(db *gorm.DB, req *dto.CandidateProfileRequest, sessionUserID uint) error
	GetProfile(db *gorm.DB, userID uint) (*models.CandidateProfile, error)
	GetCandidateID(db *gorm.DB, userID uint) (uint, error)
}

type CandidateProfileServiceImpl struct {
	profileRepo repositories.CandidateProfileRepository
	// allowBodyUserID re-enables the legacy fallback of trusting a
	// userId from the payload when no session principal exists.
	allowBodyUserID bool
}

func NewCandidateProfileService(profileRepo repositories.CandidateProfileRepository, allowBodyUserID bool) CandidateProfileService {
	return &CandidateProfileServiceImpl{
		profileRepo:     profileRepo,
		allowBodyUserID: allowBodyUserID,
	}
}

// SaveProfile upserts the profile for the acting user: find the row by
// user id or create one, then overwrite the full field set from the
// request. Absent fields clear stored values; this is replacement, not
// merge. IsProfileComplete is set true on every successful save.
func (s *CandidateProfileServiceImpl) SaveProfile(db *gorm.DB, req *dto.CandidateProfileRequest, sessionUserID uint) error {
	userID := sessionUserID
	if userID == 0 && s.allowBodyUserID {
		userID = req.UserID
	}
	if userID == 0 {
		return apperrors.NewUnauthorizedError("Unauthorized: Please login first")
	}

	// Parse enumerated/typed fields before touching the store so a bad
	// value can never leave a partial write behind.
	var gender *models.Gender
	if req.Gender != "" {
		g, err := models.ParseGender(req.Gender)
		if err != nil {
			return apperrors.NewValidationError("Invalid gender value: " + req.Gender)
		}
		gender = &g
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		d, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
		if err != nil {
			return apperrors.NewValidationError("Invalid dateOfBirth, expected YYYY-MM-DD")
		}
		dateOfBirth = &d
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.InternalError(err)
		}
		profile = &models.CandidateProfile{}
	}

	profile.UserID = userID
	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Headline = req.Headline
	profile.Bio = req.Bio
	profile.Phone = req.Phone
	profile.City = req.City
	profile.Province = req.Province
	profile.PostalCode = req.PostalCode
	profile.Address = req.Address
	profile.DateOfBirth = dateOfBirth
	profile.Gender = gender
	profile.Portfolio = req.Portfolio
	profile.Linkedin = req.Linkedin
	profile.Github = req.Github
	profile.Website = req.Website
	profile.IsProfileComplete = true

	if err := s.profileRepo.Save(db, profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetProfile returns the stored profile, or a structurally valid
// zero-value profile when none exists yet. Callers cannot distinguish
// "no profile" from "all-default profile" through this call; that is
// the documented contract the frontend relies on.
func (s *CandidateProfileServiceImpl) GetProfile(db *gorm.DB, userID uint) (*models.CandidateProfile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return &models.CandidateProfile{}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// GetCandidateID returns the profile's own id (distinct from the user
// id) when a profile exists.
func (s *CandidateProfileServiceImpl) GetCandidateID(db *gorm.DB, userID uint) (uint, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return 0, apperrors.NewNotFoundError("Profile not found")
		}
		return 0, apperrors.InternalError(err)
	}
	return profile.ID, nil
}
