package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	"github.com/imnahmed17/user-order-api/internal/domain/repository"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	FullName  fullNameDocument   `bson:"fullName"`
	Age       int                `bson:"age"`
	Email     string             `bson:"email"`
	IsActive  bool               `bson:"isActive"`
	Hobbies   []string           `bson:"hobbies"`
	Address   addressDocument    `bson:"address"`
	IsDeleted bool               `bson:"isDeleted"`
	Orders    []orderDocument    `bson:"orders"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type fullNameDocument struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
}

type addressDocument struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	Country string `bson:"country"`
}

type orderDocument struct {
	ProductName string  `bson:"productName"`
	Price       float64 `bson:"price"`
	Quantity    int     `bson:"quantity"`
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

// notDeleted composes the soft-delete exclusion into a userId filter.
// Every read in this repository goes through it; the exclusion is a
// store-level invariant, not something callers opt into.
func notDeleted(filter bson.M) bson.M {
	filter["isDeleted"] = bson.M{"$ne": true}
	return filter
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	doc := toDocument(u)
	doc.CreatedAt = time.Now().UTC()
	doc.UpdatedAt = doc.CreatedAt
	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	u.CreatedAt = doc.CreatedAt
	u.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cur, err := r.coll.Find(ctx, notDeleted(bson.M{}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	users := make([]entity.User, 0)
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, *toEntity(&doc))
	}
	return users, cur.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, notDeleted(bson.M{"userId": userID})).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&doc), nil
}

// Replace overwrites every mutable field of the target document.
// The storage _id and createdAt are preserved; isDeleted stays false
// because only non-deleted documents match the filter.
func (r *UserRepository) Replace(ctx context.Context, userID string, u *entity.User) error {
	now := time.Now().UTC()
	doc := toDocument(u)
	update := bson.M{"$set": bson.M{
		"userId":    doc.UserID,
		"username":  doc.Username,
		"password":  doc.Password,
		"fullName":  doc.FullName,
		"age":       doc.Age,
		"email":     doc.Email,
		"isActive":  doc.IsActive,
		"hobbies":   doc.Hobbies,
		"address":   doc.Address,
		"orders":    doc.Orders,
		"updatedAt": now,
	}}
	res, err := r.coll.UpdateOne(ctx, notDeleted(bson.M{"userId": userID}), update)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	u.UpdatedAt = now
	return nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{
		"isDeleted": true,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, notDeleted(bson.M{"userId": userID}), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendOrder pushes the order in a single atomic document update,
// so concurrent appends to the same user interleave instead of racing
// a read-modify-write cycle.
func (r *UserRepository) AppendOrder(ctx context.Context, userID string, o entity.Order) ([]entity.Order, error) {
	update := bson.M{
		"$push": bson.M{"orders": orderDocument{
			ProductName: o.ProductName,
			Price:       o.Price,
			Quantity:    o.Quantity,
		}},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx, notDeleted(bson.M{"userId": userID}), update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toEntity(&doc).Orders, nil
}

func toDocument(u *entity.User) *userDocument {
	orders := make([]orderDocument, 0, len(u.Orders))
	for _, o := range u.Orders {
		orders = append(orders, orderDocument{ProductName: o.ProductName, Price: o.Price, Quantity: o.Quantity})
	}
	return &userDocument{
		UserID:   u.UserID,
		Username: u.Username,
		Password: u.Password,
		FullName: fullNameDocument{FirstName: u.FullName.FirstName, LastName: u.FullName.LastName},
		Age:      u.Age,
		Email:    u.Email,
		IsActive: u.IsActive,
		Hobbies:  u.Hobbies,
		Address:  addressDocument{Street: u.Address.Street, City: u.Address.City, Country: u.Address.Country},
		Orders:   orders,
	}
}

func toEntity(doc *userDocument) *entity.User {
	orders := make([]entity.Order, 0, len(doc.Orders))
	for _, o := range doc.Orders {
		orders = append(orders, entity.Order{ProductName: o.ProductName, Price: o.Price, Quantity: o.Quantity})
	}
	return &entity.User{
		UserID:    doc.UserID,
		Username:  doc.Username,
		Password:  doc.Password,
		FullName:  entity.FullName{FirstName: doc.FullName.FirstName, LastName: doc.FullName.LastName},
		Age:       doc.Age,
		Email:     doc.Email,
		IsActive:  doc.IsActive,
		Hobbies:   doc.Hobbies,
		Address:   entity.Address{Street: doc.Address.Street, City: doc.Address.City, Country: doc.Address.Country},
		IsDeleted: doc.IsDeleted,
		Orders:    orders,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)
