// Package model holds the persistence representations of domain entities
// and the mappers between the two.
package model

import "ideabank/internal/domain/entity"

// FromUserDomain maps a user entity to its table row.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

// ToDomain maps a users row back to the entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

// FromIdeaDomain maps an idea entity to its table row.
func FromIdeaDomain(idea *entity.Idea) *IdeaModel {
	m := &IdeaModel{
		ID:          idea.ID,
		UserID:      idea.UserID,
		Name:        idea.Name,
		Description: idea.Description,
		Realised:    idea.Realised,
		CreatedAt:   idea.CreatedAt,
	}
	if idea.Points != nil {
		points := *idea.Points
		m.Points = &points
	}

	return m
}

// ToDomain maps an ideas row back to the entity.
func (m *IdeaModel) ToDomain() *entity.Idea {
	idea := &entity.Idea{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Realised:    m.Realised,
		CreatedAt:   m.CreatedAt.UTC(),
	}
	if m.Points != nil {
		points := *m.Points
		idea.Points = &points
	}

	return idea
}
