package mws

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// Report processing statuses returned by the service. The transition
// SUBMITTED → IN_PROGRESS → DONE/DONE_NO_DATA/CANCELLED is driven entirely
// by the server; this client only polls.
const (
	ReportStatusSubmitted  = "_SUBMITTED_"
	ReportStatusInProgress = "_IN_PROGRESS_"
	ReportStatusDone       = "_DONE_"
	ReportStatusDoneNoData = "_DONE_NO_DATA_"
	ReportStatusCancelled  = "_CANCELLED_"
)

// Report is the outcome of a GetReport call. Done is true once the service
// finished generating the report; Rows holds the parsed rows of a
// tab-delimited report and Data the decoded document of an XML report.
type Report struct {
	Status string
	Done   bool
	Rows   []map[string]string
	Data   Node
}

// RequestReport submits a report generation request and returns the report
// request id to poll with. A missing id in the response is an error, never
// an empty id.
func (c *Client) RequestReport(ctx context.Context, reportType string, start, end *time.Time) (string, error) {
	query := map[string]string{
		"MarketplaceIdList.Id.1": c.cfg.MarketplaceID,
		"ReportType":             reportType,
	}
	if start != nil {
		query["StartDate"] = start.UTC().Format(timestampFormat)
	}
	if end != nil {
		query["EndDate"] = end.UTC().Format(timestampFormat)
	}

	response, err := c.doXML(ctx, "RequestReport", query)
	if err != nil {
		return "", fmt.Errorf("requesting report: %w", err)
	}

	id := digString(response, "RequestReportResult", "ReportRequestInfo", "ReportRequestId")
	if id == "" {
		return "", fmt.Errorf("requesting report: no request id in response")
	}
	return id, nil
}

// GetReportRequestStatus returns the processing state of a report request,
// or ErrNotFound when the service does not know the id.
func (c *Client) GetReportRequestStatus(ctx context.Context, reportRequestID string) (Node, error) {
	response, err := c.doXML(ctx, "GetReportRequestList", map[string]string{
		"ReportRequestIdList.Id.1": reportRequestID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting report request status: %w", err)
	}

	info := digNode(response, "GetReportRequestListResult", "ReportRequestInfo")
	if info == nil {
		return nil, fmt.Errorf("report request %s: %w", reportRequestID, ErrNotFound)
	}
	return info, nil
}

// GetReport checks the processing state of a report request and, when the
// report is done, fetches its content. _DONE_NO_DATA_ yields an empty row
// set without a content fetch; any unfinished or cancelled state yields
// Done=false with the status. Tab-delimited bodies are parsed into one map
// per row keyed by the header row.
func (c *Client) GetReport(ctx context.Context, reportRequestID string) (*Report, error) {
	info, err := c.GetReportRequestStatus(ctx, reportRequestID)
	if err != nil {
		return nil, err
	}

	status := digString(info, "ReportProcessingStatus")
	switch status {
	case ReportStatusDoneNoData:
		return &Report{Status: status, Done: true, Rows: []map[string]string{}}, nil
	case ReportStatusDone:
	default:
		return &Report{Status: status}, nil
	}

	resp, err := c.do(ctx, "GetReport", map[string]string{
		"ReportId": digString(info, "GeneratedReportId"),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching report content: %w", err)
	}

	report := &Report{Status: status, Done: true}
	if resp.isXML() {
		if report.Data, err = resp.decode(); err != nil {
			return nil, err
		}
		return report, nil
	}

	if report.Rows, err = parseTabDelimited(resp.body); err != nil {
		return nil, fmt.Errorf("parsing report rows: %w", err)
	}
	return report, nil
}

// parseTabDelimited zips each data row of a tab-separated document against
// the header names of row 0.
func parseTabDelimited(data []byte) ([]map[string]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetReportList returns the reports created in the previous 90 days,
// optionally filtered by report type.
func (c *Client) GetReportList(ctx context.Context, reportTypes []string) (Node, error) {
	query := map[string]string{}
	for i, reportType := range reportTypes {
		query["ReportTypeList.Type."+strconv.Itoa(i+1)] = reportType
	}

	response, err := c.doXML(ctx, "GetReportList", query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	return response, nil
}

// GetReportListByNextToken fetches the next page of a GetReportList result.
func (c *Client) GetReportListByNextToken(ctx context.Context, nextToken string) (Node, error) {
	if nextToken == "" {
		return nil, &ValidationError{Reason: "next token is required"}
	}

	response, err := c.doXML(ctx, "GetReportListByNextToken", map[string]string{
		"NextToken": nextToken,
	})
	if err != nil {
		return nil, fmt.Errorf("listing reports by next token: %w", err)
	}
	return response, nil
}
