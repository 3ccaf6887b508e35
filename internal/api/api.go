package api

import (
	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/transport"
)

// API bundles all endpoint adapters over one transport client.
type API struct {
	Auth *Auth

	CheckIns         *Resource[model.CheckIn]
	TrainingSessions *Resource[model.TrainingSession]
	TrainingPlans    *Resource[model.TrainingPlan]
	Meals            *Resource[model.Meal]
	NutritionPlans   *Resource[model.NutritionPlan]

	SessionExercises      *Subresource[model.Exercise]
	TrainingPlanExercises *Subresource[model.Exercise]
	MealFoods             *Subresource[model.Food]
	NutritionPlanMeals    *Subresource[model.Meal]
}

// New wires every adapter to its endpoint path.
func New(c *transport.Client) *API {
	return &API{
		Auth: NewAuth(c),

		CheckIns:         NewResource[model.CheckIn](c, "/api/checkins/"),
		TrainingSessions: NewResource[model.TrainingSession](c, "/api/training/sessions/"),
		TrainingPlans:    NewResource[model.TrainingPlan](c, "/api/training/plans/"),
		Meals:            NewResource[model.Meal](c, "/api/nutrition/meals/"),
		NutritionPlans:   NewResource[model.NutritionPlan](c, "/api/nutrition/plans/"),

		SessionExercises:      NewSubresource[model.Exercise](c, "/api/training/sessions/", "exercises"),
		TrainingPlanExercises: NewSubresource[model.Exercise](c, "/api/training/plans/", "exercises"),
		MealFoods:             NewSubresource[model.Food](c, "/api/nutrition/meals/", "foods"),
		NutritionPlanMeals:    NewSubresource[model.Meal](c, "/api/nutrition/plans/", "meals"),
	}
}
