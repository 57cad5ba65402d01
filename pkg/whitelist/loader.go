package whitelist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LoadAddresses reads the static address list. Files ending in .json must
// contain a JSON array of strings; anything else is read one address per
// line, skipping blank lines and # comments.
func LoadAddresses(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read address list %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var addresses []string
		if err := json.Unmarshal(data, &addresses); err != nil {
			return nil, errors.Wrapf(err, "failed to decode address list %s", path)
		}
		return addresses, nil
	}

	addresses := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan address list %s", path)
	}
	return addresses, nil
}
