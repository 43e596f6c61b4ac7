package ivr

// Voice settings applied to every spoken prompt.
const (
	promptVoice    = "alice"
	promptLanguage = "en-US"
)

// Webhook paths referenced by gather directives. The router must mount the
// handlers on these exact paths, since the telephony provider posts the next
// call step to whatever action URL the previous document named.
const (
	PathIncomingCall = "/incoming-call"
	PathChoice       = "/handle_verification_choice"
	PathVerifyCode   = "/verify_code"
	PathIncomingSMS  = "/incoming-sms"
)

// Gather parameters: one digit within 15s for the menu, six digits within 45s
// for the code entry.
const (
	menuNumDigits = "1"
	menuTimeout   = "15"
	codeNumDigits = "6"
	codeTimeout   = "45"
)

// Fixed prompt wording. This text is part of the caller-facing contract and
// must not be reworded.
const (
	msgWelcome = "Thank you for calling %s. " +
		"This is our automated identity verification system. " +
		"Please select from the following options."

	msgMenu = "Press 1 to receive an identity verification code via text message, " +
		"or press 2 to speak with a customer service representative."

	msgNoSelection = "We didn't receive your selection. Please call back and try again. Goodbye."

	msgRateLimited = "We're experiencing high call volume. Please try again in a few minutes."

	msgCodeSent = "An identity verification code has been sent to your registered phone number. " +
		"Please check your text messages and enter the code when prompted."

	msgEnterCode = "Please enter the 6-digit verification code you received via text message."

	msgNoCode = "We didn't receive the verification code. Please call back and try again. Goodbye."

	msgTechnicalDifficulty = "We're experiencing technical difficulties. " +
		"Please try again later or contact our customer support team."

	msgHoldForAgent = "Please hold while we connect you to a customer service representative."

	msgAgentUnavailable = "Our customer service team is currently unavailable. " +
		"Please try again during business hours or use our online support portal."

	msgInvalidSelection = "Invalid selection. Please call back and try again. Goodbye."

	msgVerifySuccess = "Identity verification successful! You have been successfully verified. " +
		"Thank you for using our business verification service."

	msgVerifyMismatch = "Verification failed. The code you entered is incorrect. " +
		"Please call back and try again."

	msgVerifyNoSession = "No active verification session found. Please start a new verification process."

	msgVerifyExpired = "Your verification session has expired. Please call back to start a new verification process."

	msgVerifyTooManyAttempts = "Too many failed attempts. Please call back to start a new verification process."
)

// Verification code SMS body; %s placeholders are business name and code.
const smsCodeBody = "%s: Your identity verification code is %s. " +
	"This code expires in 10 minutes. Do not share this code with anyone."

// SMS command replies.
const (
	smsHelpReply = "Welcome to %s! " +
		"Call our business verification line to start the identity verification process. " +
		"Reply with 'status' to check your verification status."

	smsStatusPendingReply = "You have a pending identity verification session. " +
		"Please call our business verification line to complete the process."

	smsStatusNoneReply = "No pending verification session found. " +
		"Call our business verification line to start the identity verification process."

	smsDefaultReply = "Thank you for contacting %s. " +
		"For identity verification assistance, please call our business verification line. " +
		"Reply with 'help' for more options."
)
