package constvars

const (
	EmailSubscriptionSubject = "[CAREPASS] Your Membership Is Active"
)

// HTML and plain-text renderings of the subscription confirmation. Both take
// the same arguments in the same order: recipient name, final price string,
// contact (sender) address, current year.
const (
	EmailSubscriptionHTMLBodyFormat = "<html><body><h2>Welcome to CarePass, %s!</h2><p>Your annual membership is now active at <strong>$%s</strong> per year.</p><ul><li>Unlimited provider search</li><li>Member pricing on every visit</li><li>Priority booking with partner clinics</li></ul><p>Questions? Reach us any time at %s.</p><p>&copy; %d CarePass</p></body></html>"
	EmailSubscriptionTextBodyFormat = "Welcome to CarePass, %s!\r\n\r\nYour annual membership is now active at $%s per year.\r\n\r\n- Unlimited provider search\r\n- Member pricing on every visit\r\n- Priority booking with partner clinics\r\n\r\nQuestions? Reach us any time at %s.\r\n\r\n(c) %d CarePass\r\n"
)
