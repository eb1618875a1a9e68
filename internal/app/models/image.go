package models

type ImageSet struct {
	ID          string `bson:"_id,omitempty"`
	HeadshotUrl string `bson:"headshotUrl"`
	GalleryUrl  string `bson:"galleryUrl"`
	ReviewsUrl  string `bson:"reviewsUrl"`
	TimeModel   `bson:",inline"`
}
