package constvars

const (
	RegexFieldName = `^[A-Za-z][A-Za-z0-9_-]*$`
	RegexEmail     = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
)
