package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

const laptopsCollection = "laptops"

// LaptopRepository implements ports.LaptopRepository using MongoDB.
type LaptopRepository struct {
	coll *mongo.Collection
}

func NewLaptopRepository(db *mongo.Database) *LaptopRepository {
	return &LaptopRepository{coll: db.Collection(laptopsCollection)}
}

type mongoLaptop struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Brand     string             `bson:"brand"`
	Model     string             `bson:"model"`
	Price     float64            `bson:"price"`
	RAMGb     int                `bson:"ram_gb"`
	StorageGb int                `bson:"storage_gb"`
	Processor string             `bson:"processor"`
	Available bool               `bson:"available"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m *mongoLaptop) toDomain() *domain.Laptop {
	return &domain.Laptop{
		ID:        m.ID.Hex(),
		Brand:     m.Brand,
		Model:     m.Model,
		Price:     m.Price,
		RAMGb:     m.RAMGb,
		StorageGb: m.StorageGb,
		Processor: m.Processor,
		Available: m.Available,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// List returns all laptops sorted by creation time, newest first.
func (r *LaptopRepository) List(ctx context.Context) ([]domain.Laptop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	laptops := []domain.Laptop{}
	for cursor.Next(ctx) {
		var ml mongoLaptop
		if err := cursor.Decode(&ml); err != nil {
			return nil, err
		}
		laptops = append(laptops, *ml.toDomain())
	}
	return laptops, cursor.Err()
}

func (r *LaptopRepository) FindByID(ctx context.Context, id string) (*domain.Laptop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLaptopNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLaptop
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLaptopNotFound
		}
		return nil, err
	}
	return ml.toDomain(), nil
}

func (r *LaptopRepository) Create(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLaptop{
		Brand:     laptop.Brand,
		Model:     laptop.Model,
		Price:     laptop.Price,
		RAMGb:     laptop.RAMGb,
		StorageGb: laptop.StorageGb,
		Processor: laptop.Processor,
		Available: laptop.Available,
		CreatedAt: laptop.CreatedAt,
		UpdatedAt: laptop.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *laptop
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Update applies a partial update and returns the updated document.
func (r *LaptopRepository) Update(ctx context.Context, id string, update ports.LaptopUpdate) (*domain.Laptop, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLaptopNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Brand != nil {
		set["brand"] = *update.Brand
	}
	if update.Model != nil {
		set["model"] = *update.Model
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.RAMGb != nil {
		set["ram_gb"] = *update.RAMGb
	}
	if update.StorageGb != nil {
		set["storage_gb"] = *update.StorageGb
	}
	if update.Processor != nil {
		set["processor"] = *update.Processor
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}

	var ml mongoLaptop
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ml)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLaptopNotFound
		}
		return nil, err
	}
	return ml.toDomain(), nil
}

func (r *LaptopRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLaptopNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLaptopNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by list and audit queries.
func (r *LaptopRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
