package v1

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is one row of a named table: an opaque id plus a typed field map.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

type recordListData struct {
	Records       []Record `json:"records"`
	NextPageToken string   `json:"nextPageToken"`
}

// TableEndpoint exposes the four record operations on named tables.
type TableEndpoint struct {
	transport *Transport
}

// ListAll fetches every record of the table, transparently following
// nextPageToken until the store reports no further page. The filter is a
// best-effort hint the store may only partially honor; callers re-filter
// client-side.
func (ep *TableEndpoint) ListAll(ctx context.Context, table string, filter map[string]string) ([]Record, error) {
	var all []Record
	pageToken := ""

	for {
		query := map[string]string{}
		for k, v := range filter {
			query[k] = v
		}
		if pageToken != "" {
			query["pageToken"] = pageToken
		}

		resp, err := ep.transport.Get(ctx, fmt.Sprintf("/api/v1/tables/%s/records", table), query)
		if err != nil {
			return nil, err
		}

		var result StatusAPIResponse[recordListData]
		if err := json.Unmarshal(resp.Data, &result); err != nil {
			return nil, fmt.Errorf("list %s: decode response: %w", table, err)
		}

		all = append(all, result.Data.Records...)

		if result.Data.NextPageToken == "" {
			return all, nil
		}
		pageToken = result.Data.NextPageToken
	}
}

// Insert creates a record and returns it with the store-assigned id.
func (ep *TableEndpoint) Insert(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	resp, err := ep.transport.Post(ctx, fmt.Sprintf("/api/v1/tables/%s/records", table), map[string]any{"fields": fields})
	if err != nil {
		return nil, err
	}

	var result StatusAPIResponse[Record]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("insert %s: decode response: %w", table, err)
	}
	return &result.Data, nil
}

// UpdateByID patches the given fields of one record.
func (ep *TableEndpoint) UpdateByID(ctx context.Context, table, id string, fields map[string]any) (*Record, error) {
	resp, err := ep.transport.Patch(ctx, fmt.Sprintf("/api/v1/tables/%s/records/%s", table, id), map[string]any{"fields": fields})
	if err != nil {
		return nil, err
	}

	var result StatusAPIResponse[Record]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("update %s/%s: decode response: %w", table, id, err)
	}
	return &result.Data, nil
}

// DeleteByID removes one record.
func (ep *TableEndpoint) DeleteByID(ctx context.Context, table, id string) error {
	_, err := ep.transport.Delete(ctx, fmt.Sprintf("/api/v1/tables/%s/records/%s", table, id))
	return err
}
