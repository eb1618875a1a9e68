package constvars

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEMultipartForm   = "multipart/form-data"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
