package models

type Provider struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Specialty string `bson:"specialty"`
	Address   string `bson:"address,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Website   string `bson:"website,omitempty"`
	TimeModel `bson:",inline"`
}

type Qualification struct {
	ID          string `bson:"_id,omitempty"`
	ProviderID  string `bson:"providerId"`
	Degree      string `bson:"degree"`
	Institution string `bson:"institution"`
	Year        int    `bson:"year"`
	TimeModel   `bson:",inline"`
}
