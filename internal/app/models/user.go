package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	TimeModel `bson:",inline"`
}

type Doctor struct {
	ID            string `bson:"_id,omitempty"`
	Name          string `bson:"name"`
	Email         string `bson:"email"`
	Password      string `bson:"password"`
	Specialty     string `bson:"specialty"`
	LicenseNumber string `bson:"licenseNumber"`
	TimeModel     `bson:",inline"`
}

type Admin struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	TimeModel `bson:",inline"`
}
