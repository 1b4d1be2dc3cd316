package scan

func NewResult(file string, status Status, message string) Result {
	res := Result{
		File:   file,
		Status: status,
	}
	if message != "" {
		res.Message = message
	}
	return res
}

func OKResult(file string) Result {
	return NewResult(file, StatusOK, "")
}

func MissingResult(file string) Result {
	return NewResult(file, StatusMissing, "license header missing")
}

func FixedResult(file string) Result {
	return NewResult(file, StatusFixed, "license header inserted")
}

func ErrorResult(file string, message string) Result {
	return NewResult(file, StatusError, message)
}
