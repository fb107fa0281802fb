package mongo

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
)

// UserRepo wraps the users and user_performance collections.
type UserRepo struct {
	col  *mongo.Collection
	perf *mongo.Collection
}

// NewUserRepo binds the collections and ensures the unique email index.
func NewUserRepo(c *Client) *UserRepo {
	colName := os.Getenv("USERS_COLLECTION")
	if colName == "" {
		colName = "users"
	}
	col := c.DB().Collection(colName)

	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &UserRepo{col: col, perf: c.DB().Collection("user_performance")}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, repositories.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}
	var user models.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastActive touches the last_active timestamp. Matching on MatchedCount
// keeps a same-value update from looking like a missing record.
func (r *UserRepo) UpdateLastActive(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrUserNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"last_active": at}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrUserNotFound
	}
	return nil
}

// Delete removes exactly one user. Interviews owned by the user are left
// untouched.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrUserNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context, limit int64) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *UserRepo) CountActiveSince(ctx context.Context, since time.Time) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"last_active": bson.M{"$gte": since}})
}

func (r *UserRepo) GetPerformance(ctx context.Context, userID string) (*models.UserPerformance, error) {
	var perf models.UserPerformance
	err := r.perf.FindOne(ctx, bson.M{"user_id": userID}).Decode(&perf)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrPerformanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

// MonthlyGrowth groups registrations by calendar year and month, ascending.
func (r *UserRepo) MonthlyGrowth(ctx context.Context) ([]models.YearMonthCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$registered_date"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$registered_date"}}},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.YearMonthCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.YearMonthCount{Year: row.ID.Year, Month: row.ID.Month, Count: row.Count})
	}
	return out, nil
}
