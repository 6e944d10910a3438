package services_test

import (
	"hustled_backend/internal/models"
	"hustled_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes. The db handle is part of the repository
// contract but unused here; tests pass nil.

type fakeUserRepo struct {
	nextID uint
	users  map[string]*models.User

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ *gorm.DB, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Username]; ok {
		return repositories.ErrUserAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	if _, ok := f.users[user.Username]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

type fakeProfileRepo struct {
	nextID   uint
	profiles map[uint]*models.CandidateProfile

	saveErr error
	findErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint]*models.CandidateProfile)}
}

func (f *fakeProfileRepo) FindByUserID(_ *gorm.DB, userID uint) (*models.CandidateProfile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProfileRepo) ExistsByUserID(_ *gorm.DB, userID uint) (bool, error) {
	_, ok := f.profiles[userID]
	return ok, nil
}

func (f *fakeProfileRepo) Save(_ *gorm.DB, profile *models.CandidateProfile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if profile.ID == 0 {
		f.nextID++
		profile.ID = f.nextID
	}
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}
