package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeNoExists         = errors.New("employee number already exists")
	ErrFingerprintNotRecognized = errors.New("fingerprint not recognized")
	ErrFingerprintExists        = errors.New("fingerprint already enrolled for another employee")
)
