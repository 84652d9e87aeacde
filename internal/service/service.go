package service

import (
	"gitlab.com/contactbook/contacts-api/internal/model"
	"gitlab.com/contactbook/contacts-api/internal/repository"
)

// Service sits between the HTTP layer and the repository. Every method
// forwards its arguments unchanged; persistence details stay behind this
// one seam.
type Service struct {
	repo *repository.Repository
}

// New returns a service backed by the given repository.
func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(limit int, offset int) ([]model.Contact, error) {
	return s.repo.List(limit, offset)
}

func (s *Service) GetByID(id int64) (model.Contact, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(input model.ContactInput) (model.Contact, error) {
	return s.repo.Create(input)
}

func (s *Service) Update(id int64, patch model.ContactPatch) (model.Contact, error) {
	return s.repo.Update(id, patch)
}

func (s *Service) Delete(id int64) (model.Contact, error) {
	return s.repo.Delete(id)
}

func (s *Service) Search(firstName, lastName, email string) ([]model.Contact, error) {
	return s.repo.Search(firstName, lastName, email)
}

func (s *Service) UpcomingBirthdays(days int) ([]model.Contact, error) {
	return s.repo.UpcomingBirthdays(days)
}
