package constvars

const (
	RegisterSuccessMessage      = "successfully registered"
	LoginSuccessMessage         = "successfully logged in"
	GetResourceSuccessMessage   = "successfully retrieved data"
	CreateResourceSuccessMessage = "successfully created data"
	UpdateResourceSuccessMessage = "successfully updated data"
	DeleteResourceSuccessMessage = "successfully deleted data"

	JoinWaitlistSuccessMessage          = "successfully joined the waitlist"
	SaveImageUrlsSuccessMessage         = "successfully saved image urls"
	UploadImageSuccessMessage           = "successfully uploaded image"
	GenerateSignatureSuccessMessage     = "successfully generated upload signature"
	CreatePaymentSuccessMessage         = "successfully recorded payment"
	SendSubscriptionEmailSuccessMessage = "subscription confirmation email sent"
)
