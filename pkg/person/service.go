package person

import "context"

type ServicePerson interface {
	GetAll(ctx context.Context) ([]*Person, error)
	Create(ctx context.Context, form Form) (*Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	Update(ctx context.Context, id string, form Form) error
	Delete(ctx context.Context, id string) error
}

type PersonService struct {
	Repo Repository
}

func NewService(repo Repository) *PersonService {
	return &PersonService{Repo: repo}
}

func (s *PersonService) GetAll(ctx context.Context) ([]*Person, error) {
	return s.Repo.GetAll(ctx)
}

func (s *PersonService) Create(ctx context.Context, form Form) (*Person, error) {
	p := &Person{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Gender:    form.Gender,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PersonService) GetByID(ctx context.Context, id string) (*Person, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update overwrites every field without checking that id exists first.
// Concurrent updates of the same id are last-write-wins.
func (s *PersonService) Update(ctx context.Context, id string, form Form) error {
	return s.Repo.Update(ctx, id, form)
}

func (s *PersonService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
