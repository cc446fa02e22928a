package sigdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUpdateURL serves the community-maintained signature list.
const DefaultUpdateURL = "https://raw.githubusercontent.com/AbsoluteSkid/FXPUtil/refs/heads/main/signatures.json"

// Update replaces the table with the list served at url and saves it. The
// body must parse as a signature array before anything local is touched.
// Returns the number of entries loaded.
func (s *Store) Update(ctx context.Context, url string) (int, error) {
	if url == "" {
		url = DefaultUpdateURL
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return 0, fmt.Errorf("upstream signature list is not valid JSON: %w", err)
	}

	s.load(records)
	if err := s.Save(); err != nil {
		return 0, err
	}
	s.logger.Info("📥 signature table updated", "url", url, "entries", s.Len())
	return s.Len(), nil
}
