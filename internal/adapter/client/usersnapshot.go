// Package client talks to the identity service for applicant snapshots.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"loanflow/internal/domain/usersnapshot"
)

type UserSnapshotClient struct {
	baseURL string
	http    *http.Client
}

func NewUserSnapshotClient(baseURL string) *UserSnapshotClient {
	return &UserSnapshotClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FindByIDs posts the id set and returns whatever snapshots exist; callers
// treat missing ids as absent, not as an error.
func (c *UserSnapshotClient) FindByIDs(ctx context.Context, userIDs []string) ([]usersnapshot.Snapshot, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	payload, err := json.Marshal(userIDs)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/clients/by-ids", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usersnapshot: by-ids returned %d", resp.StatusCode)
	}
	var out []usersnapshot.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UserSnapshotClient) FindByID(ctx context.Context, userID string) (*usersnapshot.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/clients/"+userID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usersnapshot: client %s returned %d", userID, resp.StatusCode)
	}
	var out usersnapshot.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
