package enums

import (
	"fmt"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// JobState is the lifecycle state of a background job. The state
// machine itself is owned by the job engine; this registry only names
// the states: Pending -> Running -> {Success, Failure, Paused, Retry},
// with Paused and Retry returning to Running. Success and Failure are
// terminal.
type JobState int

const (
	JobStatePending JobState = iota
	JobStateRunning
	JobStateSuccess
	JobStateFailure
	JobStatePaused
	JobStateRetry
)

var jobStateNames = map[JobState]string{
	JobStatePending: "Pending",
	JobStateRunning: "Running",
	JobStateSuccess: "Success",
	JobStateFailure: "Failure",
	JobStatePaused:  "Paused",
	JobStateRetry:   "Retry",
}

func (s JobState) String() string {
	if name, ok := jobStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("JobState(%d)", int(s))
}

// ParseJobState parses the serialized form of a job state.
func ParseJobState(s string) (JobState, error) {
	for state, name := range jobStateNames {
		if s == name {
			return state, nil
		}
	}
	return JobStatePending, errors.NewParameterOutOfRange(
		fmt.Sprintf("unknown job state: %q", s))
}

// IsTerminal reports whether the state ends the job lifecycle.
func (s JobState) IsTerminal() bool {
	return s == JobStateSuccess || s == JobStateFailure
}

// JobStepCode is the outcome of one execution step of a job.
type JobStepCode int

const (
	JobStepCodeSuccess JobStepCode = iota
	JobStepCodeFailure
	JobStepCodeContinue
	JobStepCodeRetry
)

func (c JobStepCode) String() string {
	switch c {
	case JobStepCodeSuccess:
		return "Success"
	case JobStepCodeFailure:
		return "Failure"
	case JobStepCodeContinue:
		return "Continue"
	case JobStepCodeRetry:
		return "Retry"
	default:
		return fmt.Sprintf("JobStepCode(%d)", int(c))
	}
}

// JobStopReason records why a running job stopped.
type JobStopReason int

const (
	JobStopReasonPaused JobStopReason = iota
	JobStopReasonCanceled
	JobStopReasonSuccess
	JobStopReasonFailure
	JobStopReasonRetry
)

func (r JobStopReason) String() string {
	switch r {
	case JobStopReasonPaused:
		return "Paused"
	case JobStopReasonCanceled:
		return "Canceled"
	case JobStopReasonSuccess:
		return "Success"
	case JobStopReasonFailure:
		return "Failure"
	case JobStopReasonRetry:
		return "Retry"
	default:
		return fmt.Sprintf("JobStopReason(%d)", int(r))
	}
}
