package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientProviderNotFound              = "provider not found"
	ErrClientQualificationNotFound         = "qualification not found"
	ErrClientPromoCodeNotFound             = "promo code not found"
	ErrClientPromoCodeAlreadyExists        = "promo code already exists"
	ErrClientWaitlistEmailAlreadyJoined    = "this email already joined the waitlist"
	ErrClientEmailAddressMissing           = "recipient or sender email address is missing"
	ErrClientEmailNotDelivered             = "we could not deliver the email"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded  = "the server deadline exceeded while processing the request"
	ErrDevURLParamIDValidationFailed = "failed to validate URL param %s"

	ErrDevAuthTokenMissing          = "authorization header or bearer token is missing"
	ErrDevAuthTokenInvalidOrExpired = "bearer token is malformed, has a bad signature, or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "failed to sign the JWT"
	ErrDevInvalidCredentials        = "credentials do not match any account"
	ErrDevFailedToHashPassword      = "failed to hash the password"

	ErrDevUserNotExists          = "user does not exist in the database"
	ErrDevDoctorNotExists        = "doctor does not exist in the database"
	ErrDevProviderNotExists      = "provider does not exist in the database"
	ErrDevQualificationNotExists = "qualification does not exist in the database"
	ErrDevPromoCodeNotExists     = "promo code does not exist in the database"
	ErrDevEmailAlreadyExists     = "email already exists in the database"
	ErrDevPromoCodeAlreadyExists = "promo code already exists in the database"
	ErrDevWaitlistDuplicateEmail = "waitlist entry with this email already exists"

	ErrDevEmailAddressMissing = "recipient or sender email address is empty"
	ErrDevMailerDispatchFailed = "email transport %s failed to deliver the message"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData = "redis failed to get data"
	ErrDevRedisSetData = "redis failed to set data"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"

	ErrDevRabbitMQPublish = "rabbitmq failed to publish message to queue %s"
)
