package person

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("person not found")

type Person struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"-" json:"id"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	Email     string             `bson:"email" json:"email"`
	Gender    string             `bson:"gender" json:"gender"`
}

// Form is the full set of fields a client may submit for a person.
// Anything else in the request body is ignored.
type Form struct {
	FirstName string
	LastName  string
	Email     string
	Gender    string
}

// Repository is the Record Store. Update and Delete of an identifier that
// matches nothing succeed without effect; GetByID reports ErrNotFound.
type Repository interface {
	Create(ctx context.Context, p *Person) error
	GetAll(ctx context.Context) ([]*Person, error)
	GetByID(ctx context.Context, id string) (*Person, error)
	Update(ctx context.Context, id string, form Form) error
	Delete(ctx context.Context, id string) error
}
