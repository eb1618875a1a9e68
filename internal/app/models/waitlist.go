package models

type WaitlistEntry struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	TimeModel `bson:",inline"`
}
