package builder

import "fmt"

// Step names a pipeline stage.
type Step string

const (
	StepPrivilege  Step = "privilege"
	StepManifest   Step = "manifest"
	StepStorage    Step = "storage"
	StepInclusions Step = "inclusions"
	StepPackage    Step = "package"
	StepRegister   Step = "register"
)

// StepError is a fatal pipeline failure.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string { return e.Err.Error() }

func (e *StepError) Unwrap() error { return e.Err }

func fail(step Step, format string, args ...any) error {
	return &StepError{Step: step, Err: fmt.Errorf(format, args...)}
}
