package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	RegistrationSessionExpiredCode    = 2001
	RegistrationSessionExpiredMessage = "registration session expired"
	RegistrationNotFoundCode          = 2002
	RegistrationNotFoundMessage       = "registration not found"
	UnknownPaymentTypeCode            = 2003
	UnknownPaymentTypeMessage         = "unknown payment type"
	InvalidStatusTransitionCode       = 2004
	InvalidStatusTransitionMessage    = "invalid status transition"
	DuplicateEntryCode                = 2005
	DuplicateEntryMessage             = "duplicate entry"
	RegistrationDraftInvalidCode      = 2006
	RegistrationDraftInvalidMessage   = "invalid registration data"

	AdminInvalidCredentialsCode    = 3001
	AdminInvalidCredentialsMessage = "invalid credentials"

	NewsNotFoundCode       = 4001
	NewsNotFoundMessage    = "news not found"
	TeamNotFoundCode       = 4002
	TeamNotFoundMessage    = "team not found"
	MatchNotFoundCode      = 4003
	MatchNotFoundMessage   = "match not found"
	SponsorNotFoundCode    = 4004
	SponsorNotFoundMessage = "sponsor not found"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case RegistrationSessionExpiredCode:
		errorStruct.ErrorCode = RegistrationSessionExpiredCode
		errorStruct.ErrorMessage = RegistrationSessionExpiredMessage
	case RegistrationNotFoundCode:
		errorStruct.ErrorCode = RegistrationNotFoundCode
		errorStruct.ErrorMessage = RegistrationNotFoundMessage
	case UnknownPaymentTypeCode:
		errorStruct.ErrorCode = UnknownPaymentTypeCode
		errorStruct.ErrorMessage = UnknownPaymentTypeMessage
	case InvalidStatusTransitionCode:
		errorStruct.ErrorCode = InvalidStatusTransitionCode
		errorStruct.ErrorMessage = InvalidStatusTransitionMessage
	case DuplicateEntryCode:
		errorStruct.ErrorCode = DuplicateEntryCode
		errorStruct.ErrorMessage = DuplicateEntryMessage
	case RegistrationDraftInvalidCode:
		errorStruct.ErrorCode = RegistrationDraftInvalidCode
		errorStruct.ErrorMessage = RegistrationDraftInvalidMessage
	case AdminInvalidCredentialsCode:
		errorStruct.ErrorCode = AdminInvalidCredentialsCode
		errorStruct.ErrorMessage = AdminInvalidCredentialsMessage
	case NewsNotFoundCode:
		errorStruct.ErrorCode = NewsNotFoundCode
		errorStruct.ErrorMessage = NewsNotFoundMessage
	case TeamNotFoundCode:
		errorStruct.ErrorCode = TeamNotFoundCode
		errorStruct.ErrorMessage = TeamNotFoundMessage
	case MatchNotFoundCode:
		errorStruct.ErrorCode = MatchNotFoundCode
		errorStruct.ErrorMessage = MatchNotFoundMessage
	case SponsorNotFoundCode:
		errorStruct.ErrorCode = SponsorNotFoundCode
		errorStruct.ErrorMessage = SponsorNotFoundMessage
	}

	return errorStruct
}
