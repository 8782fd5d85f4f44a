package response

import (
	"encoding/json"
	"io"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: ErrorCodeOK,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// NewErrorResp returns a failed response. Unknown errors get the generic message.
func NewErrorResp(err error, known bool) Resp {
	if !known {
		return Resp{ErrorCode: InternalServerErrorCode, Message: DefaultErrorMessage}
	}
	return Resp{ErrorCode: ErrorCodeInvalid, Message: err.Error()}
}

// OK writes an indented OK envelope around data.
func OK(w io.Writer, data any) error {
	return Write(w, NewOKResp(data))
}

// Error writes an indented error envelope.
func Error(w io.Writer, err error, known bool) error {
	return Write(w, NewErrorResp(err, known))
}

// Write encodes resp as indented JSON followed by a newline.
func Write(w io.Writer, resp Resp) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
