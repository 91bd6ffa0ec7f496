package services

import (
	"errors"
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	uploader *utils.Uploader
}

func NewUserService(db *gorm.DB, uploader *utils.Uploader) *UserService {
	return &UserService{db: db, uploader: uploader}
}

type ProfileInput struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", id, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func (s *UserService) Profile(userID uint) (map[string]interface{}, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"profile_picture": user.ProfilePicture,
		"created_at":      user.CreatedAt,
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	user, err := s.FindByID(userID)
	if err != nil {
		return err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.ProfilePicture != "" {
		if s.uploader == nil {
			return errors.New("image uploads not configured")
		}
		url, err := s.uploader.UploadBase64Image(input.ProfilePicture, "avatars/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		user.ProfilePicture = url
	}

	return s.db.Save(user).Error
}
