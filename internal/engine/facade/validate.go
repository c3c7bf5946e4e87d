package facade

import "go.trai.ch/transfer/internal/core/domain"

// validate checks the arguments shared by every resolve operation.
func validate(req *domain.BuildingRequest, needsFilter bool, filter domain.Filter) error {
	if req == nil {
		return domain.NewInvalidArgument("buildingRequest")
	}
	if needsFilter && filter == nil {
		return domain.NewInvalidArgument("filter")
	}
	return nil
}

// validateRoot checks the building request, then the root, then the filter.
func validateRoot(req *domain.BuildingRequest, hasRoot bool, rootName string, filter domain.Filter, needsFilter bool) error {
	if req == nil {
		return domain.NewInvalidArgument("buildingRequest")
	}
	if !hasRoot {
		return domain.NewInvalidArgument(rootName)
	}
	return validate(req, needsFilter, filter)
}
