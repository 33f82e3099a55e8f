// Package update checks GitHub for a newer release of the tool.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const releasesURL = "https://api.github.com/repos/firstfu/app-store-crawler/releases/latest"

type release struct {
	TagName string `json:"tag_name"`
}

// Check returns the latest released version when it differs from
// currentVersion. Any failure — network, status, decode — yields ("", false);
// a version check is never worth failing a run over.
func Check(ctx context.Context, currentVersion string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", false
	}

	latest := strings.TrimPrefix(rel.TagName, "v")
	current := strings.TrimPrefix(currentVersion, "v")
	if latest == "" || latest == current {
		return "", false
	}
	return latest, true
}
