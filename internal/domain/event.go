package domain

// CallEvent is one inbound webhook callback from the telephony provider.
// Every call step arrives as an independent form-encoded POST; the caller's
// number is the only key tying steps of one logical call together.
type CallEvent struct {
	From   string `validate:"required"`
	Digits string
	Body   string
}
