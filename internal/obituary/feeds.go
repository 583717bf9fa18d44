package obituary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Feed is one obituary RSS source. ForceArchive marks hard-paywalled
// publications whose digest links must always point at the public
// archive rather than the original page.
type Feed struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	ForceArchive bool   `yaml:"forceArchive"`
}

type feedsFile struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads the feed list from a YAML file.
func LoadFeeds(path string) ([]Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds config: %w", err)
	}

	var f feedsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse feeds config: %w", err)
	}
	if len(f.Feeds) == 0 {
		return nil, fmt.Errorf("feeds config %s lists no feeds", path)
	}
	for i, feed := range f.Feeds {
		if feed.Name == "" || feed.URL == "" {
			return nil, fmt.Errorf("feed %d in %s is missing name or url", i, path)
		}
	}
	return f.Feeds, nil
}
