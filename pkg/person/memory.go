package person

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps people in process memory, in insertion order.
// It is meant for tests and local prototyping.
type MemoryRepo struct {
	mu     sync.RWMutex
	order  []string
	people map[string]Person
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{people: make(map[string]Person)}
}

func (r *MemoryRepo) Create(_ context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.MongoID = primitive.NewObjectID()
	p.ID = p.MongoID.Hex()

	r.people[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemoryRepo) GetAll(_ context.Context) ([]*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	people := make([]*Person, 0, len(r.order))
	for _, id := range r.order {
		p := r.people[id]
		people = append(people, &p)
	}
	return people, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.people[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryRepo) Update(_ context.Context, id string, form Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.people[id]
	if !ok {
		return nil
	}
	p.FirstName = form.FirstName
	p.LastName = form.LastName
	p.Email = form.Email
	p.Gender = form.Gender
	r.people[id] = p
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[id]; !ok {
		return nil
	}
	delete(r.people, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
