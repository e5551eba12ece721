package service

import (
	"html"

	"lostfound/database"
	"lostfound/database/model"
)

type LostItemService struct{}

func (s *LostItemService) GetAll() ([]*model.LostItem, error) {
	db := database.GetDB()
	var items []*model.LostItem
	err := db.Model(model.LostItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores a new lost item. Owner comes from the session, never
// from client input. Title and description are HTML-escaped at write
// time.
func (s *LostItemService) Create(owner string, title string, description string, image string) error {
	db := database.GetDB()
	item := &model.LostItem{
		Owner:       owner,
		Title:       html.EscapeString(title),
		Description: html.EscapeString(description),
		Image:       image,
	}
	return db.Create(item).Error
}

// Resolve marks the item resolved. Idempotent; a nonexistent id affects
// zero rows and is not an error.
func (s *LostItemService) Resolve(id int) error {
	db := database.GetDB()
	return db.Model(model.LostItem{}).
		Where("id = ?", id).
		Update("resolved", true).
		Error
}
