package models

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type MonthlyGrowth struct {
	Month string `json:"month"` // "YYYY-MM"
	Users int    `json:"users"`
}

type DayCount struct {
	Day   string `json:"day"` // "Sun".."Sat"
	Count int    `json:"count"`
}

// YearMonthCount and WeekdayCount are raw aggregation rows; handlers attach
// the display labels.
type YearMonthCount struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
	Count int `bson:"count" json:"count"`
}

type WeekdayCount struct {
	Weekday int `bson:"weekday" json:"weekday"` // 1 = Sunday .. 7 = Saturday
	Count   int `bson:"count" json:"count"`
}

// PlatformStats is computed fresh on every request and never persisted.
type PlatformStats struct {
	TotalUsers           int64           `json:"total_users"`
	ActiveUsersLast7Days int64           `json:"active_users_last_7_days"`
	TotalInterviews      int64           `json:"total_interviews"`
	AverageScore         float64         `json:"average_score"`
	PopularRoles         []RoleCount     `json:"popular_roles"`
	UserGrowth           []MonthlyGrowth `json:"user_growth"`
	InterviewsByDay      []DayCount      `json:"interviews_by_day"`
}
