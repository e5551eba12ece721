// Package service implements the business operations of the
// lost-and-found panel on top of the database package.
package service

import (
	"lostfound/database"
	"lostfound/database/model"
	"lostfound/logger"

	"gorm.io/gorm"
)

type UserService struct{}

// GetFirstUser returns the first seeded account, used by the CLI to
// show current settings.
func (s *UserService) GetFirstUser() (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser validates a username/password pair against the user table.
// Passwords are stored and compared in plaintext; this mirrors the
// existing system and is a documented weakness, not a pattern to copy.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if user.Password != password {
		return nil
	}
	return user
}
