package constvars

type ContextKey string

const (
	CONTEXT_USER_ID_KEY ContextKey = "userID"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionDoctors        = "doctors"
	MongoCollectionAdmins         = "admins"
	MongoCollectionWaitlist       = "waitlist"
	MongoCollectionProviders      = "providers"
	MongoCollectionQualifications = "qualifications"
	MongoCollectionPromoCodes     = "promocodes"
	MongoCollectionPayments       = "payments"
	MongoCollectionImageSets      = "imagesets"
)

// Annual membership price in USD. Discounts from promo codes are applied
// against this value.
const AnnualMembershipPriceUSD = 119.88

const (
	EmailServiceSES  = "ses"
	EmailServiceSMTP = "smtp"
)

const (
	RedisPromoDiscountKeyFormat = "promo_discount:%s"
)
