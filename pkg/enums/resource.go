package enums

import (
	"fmt"
	"strings"

	"github.com/pacscore/dicom-registry/pkg/errors"
)

// ResourceType is a level of the DICOM containment hierarchy
// Patient > Study > Series > Instance. The numeric values are stored
// in the database and are frozen.
type ResourceType int

const (
	ResourceTypePatient  ResourceType = 1
	ResourceTypeStudy    ResourceType = 2
	ResourceTypeSeries   ResourceType = 3
	ResourceTypeInstance ResourceType = 4
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypePatient:
		return "Patient"
	case ResourceTypeStudy:
		return "Study"
	case ResourceTypeSeries:
		return "Series"
	case ResourceTypeInstance:
		return "Instance"
	default:
		return fmt.Sprintf("ResourceType(%d)", int(t))
	}
}

// ParseResourceType parses a hierarchy level name, case-insensitively.
func ParseResourceType(s string) (ResourceType, error) {
	switch strings.ToLower(s) {
	case "patient":
		return ResourceTypePatient, nil
	case "study":
		return ResourceTypeStudy, nil
	case "series":
		return ResourceTypeSeries, nil
	case "instance":
		return ResourceTypeInstance, nil
	default:
		return ResourceTypePatient, errors.NewParameterOutOfRange(
			fmt.Sprintf("unknown resource type: %q", s))
	}
}

// Child returns the level directly contained by t. Asking for the
// child of an instance violates the hierarchy and fails.
func (t ResourceType) Child() (ResourceType, error) {
	switch t {
	case ResourceTypePatient:
		return ResourceTypeStudy, nil
	case ResourceTypeStudy:
		return ResourceTypeSeries, nil
	case ResourceTypeSeries:
		return ResourceTypeInstance, nil
	default:
		return t, errors.NewParameterOutOfRange(
			fmt.Sprintf("resource type %s has no child level", t))
	}
}

// Parent returns the level directly containing t. Asking for the
// parent of a patient fails.
func (t ResourceType) Parent() (ResourceType, error) {
	switch t {
	case ResourceTypeStudy:
		return ResourceTypePatient, nil
	case ResourceTypeSeries:
		return ResourceTypeStudy, nil
	case ResourceTypeInstance:
		return ResourceTypeSeries, nil
	default:
		return t, errors.NewParameterOutOfRange(
			fmt.Sprintf("resource type %s has no parent level", t))
	}
}

// IsLevelAboveOrEqual reports whether level is the same as, or an
// ancestor of, reference in the containment tree (Patient is above
// Study).
func IsLevelAboveOrEqual(level, reference ResourceType) bool {
	return level <= reference
}

// DicomModule is a group of metadata attributes of the DICOM data
// model (PS3.3). DicomModuleImage covers pixel-level metadata and is
// reached through a dedicated path, never through ResourceType.Module.
type DicomModule int

const (
	DicomModulePatient DicomModule = iota
	DicomModuleStudy
	DicomModuleSeries
	DicomModuleInstance
	DicomModuleImage
)

func (m DicomModule) String() string {
	switch m {
	case DicomModulePatient:
		return "Patient"
	case DicomModuleStudy:
		return "Study"
	case DicomModuleSeries:
		return "Series"
	case DicomModuleInstance:
		return "Instance"
	case DicomModuleImage:
		return "Image"
	default:
		return fmt.Sprintf("DicomModule(%d)", int(m))
	}
}

// Module returns the metadata module owned by the hierarchy level.
func (t ResourceType) Module() (DicomModule, error) {
	switch t {
	case ResourceTypePatient:
		return DicomModulePatient, nil
	case ResourceTypeStudy:
		return DicomModuleStudy, nil
	case ResourceTypeSeries:
		return DicomModuleSeries, nil
	case ResourceTypeInstance:
		return DicomModuleInstance, nil
	default:
		return DicomModulePatient, errors.NewParameterOutOfRange(
			fmt.Sprintf("no module for resource type %d", int(t)))
	}
}
