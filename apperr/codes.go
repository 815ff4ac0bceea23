package apperr

// Stable fault codes. Each failure condition has its own code.
const (
	CodeInternal    = "LP-5000"
	MessageInternal = "Internal Server Error. Please try again later."

	CodeBadRequest = "LP-4000"

	// authentication and authorization
	CodeTokenMissing       = "LP-401"
	CodeTokenInvalid       = "LP-4011"
	CodePrincipalNotFound  = "LP-101"
	CodeAccessDenied       = "AUTH-0001"
	CodeRateLimited        = "LP-429"
	CodeInvalidCredentials = "AU-1002"

	// accounts
	CodeUserExists         = "AU-1001"
	CodeInvalidUserDetails = "AU-1003"
	CodeInvalidRole        = "AU-1004"

	// stock ledger
	CodeInvalidCylinder     = "CY-4001"
	CodeInvalidStockValues  = "CY-4002"
	CodeInvalidCylinderType = "CY-4003"
	CodeCylindersNotFound   = "CY-404"

	// orders
	CodeOrderInvalidType       = "OR-4001"
	CodeOrderCapacityMismatch  = "OR-4002"
	CodeOrderInvalidQuantity   = "OR-4003"
	CodeInvalidDateRange       = "OR-4004"
	CodeMalformedDate          = "OR-4005"
	CodeNoStock                = "OR-102"
	CodeInsufficientStock      = "OR-103"
	CodeOrderNotFound          = "OR-404"
	CodeNoOrdersFound          = "OR-4041"
	CodeForeignOrderLookup     = "OR-4031"
	CodeAdminFiltersRequired   = "OR-402"
	CodeModifyWindowExpired    = "OR-405"
	CodeModifyCylinderNotFound = "OR-406"
	CodeModifyInsufficient     = "OR-407"
	CodeCancelWindowExpired    = "OR-408"
	CodeCancelForbidden        = "OR-409"
	CodeOrderNotModifiable     = "OR-410"

	// deliveries
	CodeDeliveryPersonNotFound = "ST-1004"
	CodeNotDeliveryPerson      = "ST-1005"
	CodeAlreadyAssigned        = "ST-1006"
	CodeNoDeliveryAssigned     = "ST-1007"
	CodeNotAssignedPerson      = "ST-1008"
	CodeAlreadyDelivered       = "ST-1010"
	CodeOrderNotAssignable     = "ST-1011"

	// feedback
	CodeInvalidRating       = "FB-400"
	CodeFeedbackOrderLookup = "FB-404"
	CodeOrderNotDelivered   = "FB-405"
	CodeFeedbackExists      = "FB-409"
)
