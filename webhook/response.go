// Package webhook provides helpers for building Adobe Commerce webhook
// responses and for verifying webhook payload signatures.
//
// A Commerce webhook expects the subscriber to answer with one or more
// operations telling Commerce how to proceed: continue unchanged, abort
// with an exception, or modify the intercepted payload.
package webhook

// Operation identifies the action Commerce performs with a webhook response.
type Operation string

const (
	// OperationSuccess tells Commerce to continue processing unchanged.
	OperationSuccess Operation = "success"

	// OperationException tells Commerce to abort with an exception.
	OperationException Operation = "exception"

	// OperationAdd inserts a value at the given payload path.
	OperationAdd Operation = "add"

	// OperationReplace replaces the value at the given payload path.
	OperationReplace Operation = "replace"

	// OperationRemove removes the value at the given payload path.
	OperationRemove Operation = "remove"
)

// Response is one operation in a webhook response body.
type Response struct {
	// Op is the operation Commerce should perform.
	Op Operation `json:"op"`

	// Class is the exception class to raise (exception operations only).
	Class string `json:"class,omitempty"`

	// Message is the exception message shown to the shopper (exception
	// operations only).
	Message string `json:"message,omitempty"`

	// Path addresses the payload node an add/replace/remove applies to.
	Path string `json:"path,omitempty"`

	// Value is the payload value for add/replace operations.
	Value any `json:"value,omitempty"`

	// Instance is the data type instantiated for the value, when Commerce
	// needs one (add/replace operations only).
	Instance string `json:"instance,omitempty"`
}

// Success returns the response that lets Commerce continue unchanged.
func Success() Response {
	return Response{Op: OperationSuccess}
}

// Exception returns a response that aborts the Commerce operation by raising
// the given exception class with the given message. An empty class lets
// Commerce fall back to its default webhook exception.
func Exception(class, message string) Response {
	return Response{
		Op:      OperationException,
		Class:   class,
		Message: message,
	}
}

// Add returns a response inserting value at path. Instance may be empty when
// Commerce can infer the value's type.
func Add(path string, value any, instance string) Response {
	return Response{
		Op:       OperationAdd,
		Path:     path,
		Value:    value,
		Instance: instance,
	}
}

// Replace returns a response replacing the value at path.
func Replace(path string, value any, instance string) Response {
	return Response{
		Op:       OperationReplace,
		Path:     path,
		Value:    value,
		Instance: instance,
	}
}

// Remove returns a response removing the value at path.
func Remove(path string) Response {
	return Response{
		Op:   OperationRemove,
		Path: path,
	}
}
