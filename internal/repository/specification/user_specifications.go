package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

type ByTokenHash struct {
	TokenHash string
}

func (s ByTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token_hash = ?", s.TokenHash)
}

type NotRevoked struct{}

func (s NotRevoked) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("revoked = false")
}
