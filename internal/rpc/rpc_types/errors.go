package rpc_types

// RpcError is an XRPL RPC error with code and message, in the shape rippled
// returns it.
type RpcError struct {
	Code        int    `json:"error_code"`
	ErrorString string `json:"error"`
	Type        string `json:"type"`
	Message     string `json:"error_message,omitempty"`
}

func (e RpcError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorString
}

// Error codes used by request validation. Values match rippled.
const (
	RpcUNKNOWN        = -1
	RpcINVALID_PARAMS = -32602
	RpcINTERNAL       = -32603

	RpcLGR_NOT_FOUND    = 15
	RpcLGR_IDXS_INVALID = 16

	RpcACT_NOT_FOUND = 19
	RpcACT_MALFORMED = 50

	RpcINVALID_HASH = 44
)

func NewRpcError(code int, error, errorType, message string) *RpcError {
	return &RpcError{
		Code:        code,
		ErrorString: error,
		Type:        errorType,
		Message:     message,
	}
}

func RpcErrorInvalidParams(message string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", message)
}

func RpcErrorActMalformed(message string) *RpcError {
	return NewRpcError(RpcACT_MALFORMED, "actMalformed", "actMalformed", message)
}

func RpcErrorLgrIdxsInvalid(message string) *RpcError {
	return NewRpcError(RpcLGR_IDXS_INVALID, "lgrIdxsInvalid", "lgrIdxsInvalid", message)
}

// RpcErrorMissingField returns an error for a missing required field (matches rippled missing_field_error)
func RpcErrorMissingField(field string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", "Missing field '"+field+"'.")
}

// RpcErrorInvalidField returns an error for an invalid field value (matches rippled invalid_field_error)
func RpcErrorInvalidField(field string) *RpcError {
	return NewRpcError(RpcINVALID_PARAMS, "invalidParams", "invalidParams", "Invalid field '"+field+"'.")
}
