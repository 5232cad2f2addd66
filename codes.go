package sqlfault

// Code identifies a section of the published error documentation. Errors
// that carry a code append a pointer to that section to their message, the
// same way the driver-level SQLSTATE gives a stable handle on an otherwise
// free-form message.
type Code string

// ErrorHelpURL is the base under which per-code background documentation is
// published.
const ErrorHelpURL = "https://relkit.dev/e"

func (c Code) URL() string {
	return ErrorHelpURL + "/" + string(c)
}

func backgroundNote(c Code) string {
	if c == "" {
		return ""
	}
	return "(Background on this error at: " + c.URL() + ")"
}
