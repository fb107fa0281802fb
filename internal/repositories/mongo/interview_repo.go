package mongo

import (
	"context"
	"errors"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewprep/internal/models"
	"interviewprep/internal/repositories"
)

// scoredBatchLimit bounds the fetch backing the average-score computation.
const scoredBatchLimit = 1000

// InterviewRepo wraps the interviews and interview_details collections.
type InterviewRepo struct {
	col     *mongo.Collection
	details *mongo.Collection
}

func NewInterviewRepo(c *Client) *InterviewRepo {
	colName := os.Getenv("INTERVIEWS_COLLECTION")
	if colName == "" {
		colName = "interviews"
	}
	return &InterviewRepo{
		col:     c.DB().Collection(colName),
		details: c.DB().Collection("interview_details"),
	}
}

func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	res, err := r.col.InsertOne(ctx, iv)
	if err != nil {
		return nil, err
	}
	iv.ID = res.InsertedID.(primitive.ObjectID)
	return iv, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInterviewNotFound
	}
	var iv models.Interview
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// GetDetail looks up the detail document by the interview's hex id stored as a
// plain string. The reference is not enforced anywhere.
func (r *InterviewRepo) GetDetail(ctx context.Context, interviewID string) (*models.InterviewDetail, error) {
	var detail models.InterviewDetail
	err := r.details.FindOne(ctx, bson.M{"interview_id": interviewID}).Decode(&detail)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrDetailNotFound
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *InterviewRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Interview, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Interview
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setField(ctx, id, bson.M{"status": status})
}

func (r *InterviewRepo) UpdateScore(ctx context.Context, id string, score int) error {
	return r.setField(ctx, id, bson.M{"score": score})
}

// setField applies a partial update. MatchedCount (not ModifiedCount) decides
// NotFound, so re-writing an unchanged value still succeeds.
func (r *InterviewRepo) setField(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrInterviewNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// Scores returns the score of every interview that has one set. Interviews
// without a score field are excluded entirely.
func (r *InterviewRepo) Scores(ctx context.Context) ([]int, error) {
	opts := options.Find().
		SetLimit(scoredBatchLimit).
		SetProjection(bson.M{"score": 1})
	cur, err := r.col.Find(ctx, bson.M{"score": bson.M{"$exists": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Score int `bson:"score"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	scores := make([]int, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, row.Score)
	}
	return scores, nil
}

// TopRoles returns the most frequent role values, ties left to Mongo's sort order.
func (r *InterviewRepo) TopRoles(ctx context.Context, limit int64) ([]models.RoleCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Role  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.RoleCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.RoleCount{Role: row.Role, Count: row.Count})
	}
	return out, nil
}

// CountByWeekday buckets interviews by $dayOfWeek (1 = Sunday .. 7 = Saturday),
// ascending. Days with no interviews produce no row.
func (r *InterviewRepo) CountByWeekday(ctx context.Context) ([]models.WeekdayCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dayOfWeek", Value: "$date"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Weekday int `bson:"_id"`
		Count   int `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.WeekdayCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.WeekdayCount{Weekday: row.Weekday, Count: row.Count})
	}
	return out, nil
}
