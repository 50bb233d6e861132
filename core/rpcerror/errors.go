package rpcerror

// Error codes reserved by JSON-RPC 2.0.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	// Implementation-defined server errors.
	CodeServerErrorMin = -32099
	CodeServerErrorMax = -32000
)

// Predefined protocol errors.
var (
	ErrParse = Error{
		Code:    CodeParseError,
		Message: "Parse error",
	}

	ErrInvalidRequest = Error{
		Code:    CodeInvalidRequest,
		Message: "Invalid Request",
	}

	ErrMethodNotFound = Error{
		Code:    CodeMethodNotFound,
		Message: "Method not found",
	}

	ErrInvalidParams = Error{
		Code:    CodeInvalidParams,
		Message: "Invalid params",
	}

	ErrInternal = Error{
		Code:    CodeInternalError,
		Message: "Internal error",
	}

	// ErrServer is the generic implementation-defined server error.
	ErrServer = Error{
		Code:    CodeServerErrorMax,
		Message: "Server error",
	}
)
