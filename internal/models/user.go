package models

import (
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted account document. The bcrypt hash stays server-side;
// json:"-" keeps it out of every response shape.
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password" json:"-"`
	IsAdmin             bool               `bson:"is_admin" json:"is_admin"`
	RegisteredDate      time.Time          `bson:"registered_date" json:"registered_date"`
	LastActive          time.Time          `bson:"last_active" json:"last_active"`
	InterviewsCompleted int                `bson:"interviews_completed" json:"interviews_completed"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// implements the Validator interface
func (r *RegisterRequest) Validate() error {
	if r.Name == "" {
		return &ErrorResponse{Code: "missing_name", Message: "Name field is required"}
	}
	if r.Email == "" {
		return &ErrorResponse{Code: "missing_email", Message: "Email field is required"}
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return &ErrorResponse{Code: "invalid_email", Message: "Email address is not valid"}
	}
	if r.Password == "" {
		return &ErrorResponse{Code: "missing_password", Message: "Password field is required"}
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ErrorResponse{Code: "missing_email", Message: "Email field is required"}
	}
	if r.Password == "" {
		return &ErrorResponse{Code: "missing_password", Message: "Password field is required"}
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SkillProgress is one series in a user's precomputed performance snapshot.
type SkillProgress struct {
	Skill  string `bson:"skill" json:"skill"`
	Scores []int  `bson:"scores" json:"scores"`
}

type MonthlyScore struct {
	Month string `bson:"month" json:"month"`
	Score int    `bson:"score" json:"score"`
}

// UserPerformance is stored as-is in the user_performance collection and is
// never derived on read.
type UserPerformance struct {
	UserID             string          `bson:"user_id" json:"user_id"`
	SkillProgress      []SkillProgress `bson:"skill_progress" json:"skill_progress"`
	ScoresByMonth      []MonthlyScore  `bson:"scores_by_month" json:"scores_by_month"`
	InterviewCount     int             `bson:"interview_count" json:"interview_count"`
	AverageScore       float64         `bson:"average_score" json:"average_score"`
	TopPerformingSkill string          `bson:"top_performing_skill" json:"top_performing_skill"`
	WeakestSkill       string          `bson:"weakest_skill" json:"weakest_skill"`
}
