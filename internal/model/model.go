// Package model defines domain records exchanged with the FitTrack API.
//
// Field names and JSON tags follow the server's serializers: snake_case
// keys, decimal fields rendered as strings, nullable numerics as pointers,
// bare dates as YYYY-MM-DD strings.
package model

import "time"

// TokenPair collects issued access/refresh tokens (refresh optional on rotation).
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Credentials is a username/password login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the authenticated account profile.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	DateOfBirth *string   `json:"date_of_birth,omitempty"`
	HeightCm    *string   `json:"height_cm,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CheckIn is a daily measurement record (one per user per date).
type CheckIn struct {
	ID                int64     `json:"id"`
	User              string    `json:"user,omitempty"`
	Date              string    `json:"date"`
	WeightKg          *string   `json:"weight_kg,omitempty"`
	BodyFatPercentage *string   `json:"body_fat_percentage,omitempty"`
	MuscleMassKg      *string   `json:"muscle_mass_kg,omitempty"`
	Mood              string    `json:"mood,omitempty"` // excellent|good|neutral|poor|bad
	EnergyLevel       *int      `json:"energy_level,omitempty"`
	SleepHours        *string   `json:"sleep_hours,omitempty"`
	WaterIntakeML     *int      `json:"water_intake_ml,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Exercise is a single exercise within a training session or plan.
type Exercise struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	WeightKg    *string `json:"weight_kg,omitempty"`
	RestSeconds *int    `json:"rest_seconds,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// TrainingSession is a completed or scheduled workout.
type TrainingSession struct {
	ID              int64      `json:"id"`
	User            string     `json:"user,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Date            string     `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
	Intensity       string     `json:"intensity"` // low|medium|high
	CaloriesBurned  *int       `json:"calories_burned,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Exercises       []Exercise `json:"exercises,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TrainingPlan is a recurring workout template.
type TrainingPlan struct {
	ID          int64      `json:"id"`
	User        string     `json:"user,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Goal        string     `json:"goal,omitempty"`
	StartDate   *string    `json:"start_date,omitempty"`
	EndDate     *string    `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active"`
	Exercises   []Exercise `json:"exercises,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Food is a single food item within a meal.
type Food struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Calories int     `json:"calories"`
	ProteinG *string `json:"protein_g,omitempty"`
	CarbsG   *string `json:"carbs_g,omitempty"`
	FatG     *string `json:"fat_g,omitempty"`
}

// Meal is a logged meal with optional nested foods.
type Meal struct {
	ID        int64     `json:"id"`
	User      string    `json:"user,omitempty"`
	Name      string    `json:"name"`
	MealType  string    `json:"meal_type"` // breakfast|lunch|dinner|snack
	Date      string    `json:"date"`
	Time      *string   `json:"time,omitempty"`
	Calories  int       `json:"calories"`
	ProteinG  *string   `json:"protein_g,omitempty"`
	CarbsG    *string   `json:"carbs_g,omitempty"`
	FatG      *string   `json:"fat_g,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Foods     []Food    `json:"foods,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NutritionPlan is a meal-plan template with target macros.
type NutritionPlan struct {
	ID             int64     `json:"id"`
	User           string    `json:"user,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	DailyCalories  *int      `json:"daily_calories,omitempty"`
	TargetProteinG *string   `json:"target_protein_g,omitempty"`
	TargetCarbsG   *string   `json:"target_carbs_g,omitempty"`
	TargetFatG     *string   `json:"target_fat_g,omitempty"`
	StartDate      *string   `json:"start_date,omitempty"`
	EndDate        *string   `json:"end_date,omitempty"`
	IsActive       bool      `json:"is_active"`
	Meals          []Meal    `json:"meals,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
