package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/fruitshare/fruitshare-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("the account has already been registered")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// CreateAccount registers a profile row for an identity-provider user
func (s *FruitShareStore) CreateAccount(id, email, displayName string) (*schema.User, error) {
	u := schema.User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &u, nil
}

// GetAccount returns the user of a given identity id
func (s *FruitShareStore) GetAccount(id string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteAccount removes a user from our system permanently
func (s *FruitShareStore) DeleteAccount(id string) error {
	return s.ormDB.Delete(schema.User{}, "id = ?", id).Error
}
