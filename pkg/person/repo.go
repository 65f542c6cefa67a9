package person

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "users"

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection(collectionName),
	}
}

func (r *MongoRepo) Create(ctx context.Context, p *Person) error {
	p.MongoID = primitive.NilObjectID

	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}
	p.MongoID = oid
	p.ID = oid.Hex()

	return nil
}

func (r *MongoRepo) GetAll(ctx context.Context) ([]*Person, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	people := make([]*Person, 0)
	if err := cursor.All(ctx, &people); err != nil {
		return nil, err
	}

	for _, p := range people {
		p.ID = p.MongoID.Hex()
	}
	return people, nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id string) (*Person, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p Person
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.ID = p.MongoID.Hex()
	return &p, nil
}

// Update replaces all four fields. An id that matches no document, including
// one that is not a valid ObjectID, is a no-op.
func (r *MongoRepo) Update(ctx context.Context, id string, form Form) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	update := bson.M{
		"$set": bson.M{
			"first_name": form.FirstName,
			"last_name":  form.LastName,
			"email":      form.Email,
			"gender":     form.Gender,
		},
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
