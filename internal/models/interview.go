package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interview is one recorded practice session. Status is a free-form string;
// no state machine is enforced between updates.
type Interview struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Role            string             `bson:"role" json:"role"`
	ExperienceLevel string             `bson:"experience_level" json:"experience_level"`
	Topics          []string           `bson:"topics" json:"topics"`
	Duration        int                `bson:"duration" json:"duration"`
	Date            time.Time          `bson:"date" json:"date"`
	Score           *int               `bson:"score,omitempty" json:"score,omitempty"`
	Status          string             `bson:"status" json:"status"`
}

type InterviewQuestion struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	TimeSpent int    `bson:"time_spent" json:"time_spent"`
	Answer    string `bson:"answer" json:"answer"`
	Feedback  string `bson:"feedback" json:"feedback"`
	Score     int    `bson:"score" json:"score"`
}

type InterviewSummary struct {
	Strengths            []string `bson:"strengths" json:"strengths"`
	Weaknesses           []string `bson:"weaknesses" json:"weaknesses"`
	OverallFeedback      string   `bson:"overall_feedback" json:"overall_feedback"`
	RecommendedResources []string `bson:"recommended_resources" json:"recommended_resources"`
}

// InterviewDetail references its interview by the interview's hex id stored as
// a plain string. Nothing enforces the reference; a detail document can
// outlive the interview it describes.
type InterviewDetail struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	InterviewID string              `bson:"interview_id" json:"interview_id"`
	Questions   []InterviewQuestion `bson:"questions" json:"questions"`
	Summary     InterviewSummary    `bson:"summary" json:"summary"`
}

type CreateInterviewRequest struct {
	UserID          string    `json:"user_id"`
	Role            string    `json:"role"`
	ExperienceLevel string    `json:"experience_level"`
	Topics          []string  `json:"topics"`
	Duration        int       `json:"duration"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
}

func (r *CreateInterviewRequest) Validate() error {
	if r.UserID == "" {
		return &ErrorResponse{Code: "missing_user_id", Message: "user_id is required"}
	}
	if r.Role == "" {
		return &ErrorResponse{Code: "missing_role", Message: "role is required"}
	}
	if r.ExperienceLevel == "" {
		return &ErrorResponse{Code: "missing_experience_level", Message: "experience_level is required"}
	}
	if r.Duration <= 0 {
		return &ErrorResponse{Code: "invalid_duration", Message: "duration must be a positive number of minutes"}
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return &ErrorResponse{Code: "missing_status", Message: "status is required"}
	}
	return nil
}

type UpdateScoreRequest struct {
	Score *int `json:"score"`
}

func (r *UpdateScoreRequest) Validate() error {
	if r.Score == nil {
		return &ErrorResponse{Code: "missing_score", Message: "score is required"}
	}
	if *r.Score < 0 || *r.Score > 100 {
		return &ErrorResponse{Code: "invalid_score", Message: "score must be between 0 and 100"}
	}
	return nil
}
