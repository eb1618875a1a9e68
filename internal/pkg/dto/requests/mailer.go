package requests

// EmailMessage is the composed transactional email handed to the mailer. It is
// built and consumed within a single request, never persisted.
type EmailMessage struct {
	Subject   string `json:"subject"`
	Recipient string `json:"recipient"`
	Sender    string `json:"sender"`
	HTMLBody  string `json:"html_body"`
	TextBody  string `json:"text_body"`
}
