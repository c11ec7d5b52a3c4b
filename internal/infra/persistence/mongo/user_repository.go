package mongo

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for the users collection repository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{users: db.Collection(usersCollection)}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	opts := options.FindOne().SetProjection(bson.D{{Key: "cartData", Value: 0}})
	if err := repo.users.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	user, err := toUserDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "stored user id is not a uuid")
	}

	return user, nil
}

// Create inserts the user with an empty embedded cart. The unique email index reports concurrent duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	doc := &userDocument{
		ID:       user.ID.String(),
		Name:     user.Name,
		Email:    user.Email,
		Password: user.PasswordHash,
		CartData: map[string]int{},
		Date:     user.CreatedAt,
	}

	if _, err := repo.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrUserEmailTaken, user.Email)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}
