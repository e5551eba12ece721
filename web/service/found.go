package service

import (
	"html"

	"lostfound/database"
	"lostfound/database/model"
)

type FoundItemService struct{}

func (s *FoundItemService) GetAll() ([]*model.FoundItem, error) {
	db := database.GetDB()
	var items []*model.FoundItem
	err := db.Model(model.FoundItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores a new found item. Unlike lost items, title and
// description are stored as submitted. The original system never
// escaped them here; templates escape at render time either way.
func (s *FoundItemService) Create(postedBy string, title string, description string, image string) error {
	db := database.GetDB()
	item := &model.FoundItem{
		PostedBy:    postedBy,
		Title:       title,
		Description: description,
		Image:       image,
	}
	return db.Create(item).Error
}

// Return marks the item returned. Same idempotent, no-op-on-missing-id
// semantics as LostItemService.Resolve.
func (s *FoundItemService) Return(id int) error {
	db := database.GetDB()
	return db.Model(model.FoundItem{}).
		Where("id = ?", id).
		Update("returned", true).
		Error
}

// Search performs a case-insensitive substring match over found-item
// titles and descriptions. The query is HTML-escaped before matching.
// An empty query matches every row.
func (s *FoundItemService) Search(query string) ([]*model.FoundItem, error) {
	db := database.GetDB()
	pattern := "%" + html.EscapeString(query) + "%"

	var items []*model.FoundItem
	err := db.Model(model.FoundItem{}).
		Select("id", "title", "description").
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
