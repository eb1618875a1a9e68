package responses

type UploadSignature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	ApiKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

type ImageSet struct {
	ID          string `json:"id"`
	HeadshotUrl string `json:"headshotUrl"`
	GalleryUrl  string `json:"galleryUrl"`
	ReviewsUrl  string `json:"reviewsUrl"`
}

type UploadedImage struct {
	ObjectName string `json:"objectName"`
}
