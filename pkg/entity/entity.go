package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type Activity struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user"`
	ActivityType   string    `json:"activity_type"`
	Duration       int       `json:"duration"`
	Distance       float64   `json:"distance"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date"`
}

type WorkoutPlan struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type DietLog struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user"`
	FoodItem string    `json:"food_item"`
	Calories int       `json:"calories"`
	Date     time.Time `json:"date"`
}

// ActivityTotals holds sums over a set of activities. Empty sets sum to zero.
type ActivityTotals struct {
	Distance float64 `json:"distance"`
	Calories int64   `json:"calories"`
	Duration int64   `json:"duration"`
}

type Progress struct {
	TotalDistance   float64        `json:"total_distance"`
	TotalCalories   int64          `json:"total_calories"`
	TotalDuration   int64          `json:"total_duration"`
	WeeklyProgress  ActivityTotals `json:"weekly_progress"`
	MonthlyProgress ActivityTotals `json:"monthly_progress"`
}

// InactiveUser is a user together with the date of their latest activity.
// LastActivity is nil when the user never logged one.
type InactiveUser struct {
	User         User
	LastActivity *time.Time
}
