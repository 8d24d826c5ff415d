package db_models

type Account struct {
	BaseModel
	Name          string
	Email         string `gorm:"unique"`
	PasswordHash  string
	Role          string
	HomeCity      string
	DefaultBudget float64

	Trips []Trip
}
