package modio

import (
	"fmt"
	"strconv"

	"github.com/modio/go-modio/pkg/request"
)

// ReportType is the reason of a content report.
type ReportType int

const (
	ReportGeneric    ReportType = 0
	ReportDMCA       ReportType = 1
	ReportNotWorking ReportType = 2
	ReportRude       ReportType = 3
	ReportIllegal    ReportType = 4
	ReportStolen     ReportType = 5
	ReportFalseInfo  ReportType = 6
	ReportOther      ReportType = 7
)

// ReportParams describe the reported content.
type ReportParams struct {
	// Resource is the reported resource type: "games", "mods" or "users".
	Resource string
	// ID of the reported resource.
	ID uint64
	// Type is the report reason.
	Type ReportType
	// Name of the reporting user, optional.
	Name string
	// Summary explains the issue to the moderators.
	Summary string
}

// SubmitReportRequest https://docs.mod.io/#submit-report
func (a *API) SubmitReportRequest(params ReportParams) request.APIRequest[*Message] {
	result := &Message{}
	switch params.Resource {
	case "games", "mods", "users":
	default:
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`report resource must be "games", "mods" or "users", given "%s"`, params.Resource)))
	}
	if params.Summary == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("report summary must be set")))
	}

	fields := map[string]string{
		"resource": params.Resource,
		"id":       strconv.FormatUint(params.ID, 10),
		"type":     strconv.Itoa(int(params.Type)),
		"summary":  params.Summary,
	}
	if params.Name != "" {
		fields["name"] = params.Name
	}

	req := a.
		newAuthRequest().
		WithResult(result).
		WithPost("report").
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}
