package repositories

import (
	"errors"

	"hustled_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("candidate profile not found")

type CandidateProfileRepository interface {
	FindByUserID(db *gorm.DB, userID uint) (*models.CandidateProfile, error)
	ExistsByUserID(db *gorm.DB, userID uint) (bool, error)
	Save(db *gorm.DB, profile *models.CandidateProfile) error
}

type CandidateProfileRepositoryImpl struct{}

func NewCandidateProfileRepository() CandidateProfileRepository {
	return &CandidateProfileRepositoryImpl{}
}

func (r *CandidateProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CandidateProfileRepositoryImpl) ExistsByUserID(db *gorm.DB, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.CandidateProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Save writes the full profile record: an insert when the primary key
// is zero, otherwise a full-row update. Callers overwrite every mutable
// field before saving, so this is last-write-wins, not a merge.
func (r *CandidateProfileRepositoryImpl) Save(db *gorm.DB, profile *models.CandidateProfile) error {
	return db.Save(profile).Error
}
