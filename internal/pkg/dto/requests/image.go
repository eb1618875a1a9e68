package requests

type SaveImageUrls struct {
	HeadshotUrl string `json:"headshotUrl" validate:"required"`
	GalleryUrl  string `json:"galleryUrl" validate:"required"`
	ReviewsUrl  string `json:"reviewsUrl" validate:"required"`
}
