package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrInvalidDataType = ErrorResponse{
		Error:   "invalid_data_type",
		Details: "Unknown content type",
	}

	ErrTypeAndIDRequired = ErrorResponse{
		Error:   "invalid_request",
		Details: "type and id query parameters are required",
	}

	ErrFileRequired = ErrorResponse{
		Error:   "file_required",
		Details: "No file in request",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Error: "authentication_failed",
	}
)
