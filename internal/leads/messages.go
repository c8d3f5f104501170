package leads

// User-facing messages. These are part of the public contract and must stay
// stable across retries.
const (
	MsgInvalidSubmission  = "Invalid submission."
	MsgRequiredFields     = "Please fill in all required fields."
	MsgInvalidEmail       = "Please provide a valid email address."
	MsgPrivacyConsent     = "Please agree to the Privacy Policy to continue"
	MsgInquiryConsent     = "Please accept the Privacy Policy and Terms to continue"
	MsgRateLimited        = "Too many submission attempts. Please try again later."
	MsgServiceUnavailable = "Service temporarily unavailable. Please try again later."
	MsgGenericFailure     = "Something went wrong. Please try again later."
	MsgAlreadySubscribed  = "You are already subscribed to our newsletter!"
)
