package dragonball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"character-auction/internal/theme"
)

const DefaultBaseURL = "https://dragonball-api.com/api"

// Transformation is a variant of a base character. When flattening is
// requested each transformation becomes its own Character, distinct by name.
type Transformation struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// APICharacter is the upstream character record.
type APICharacter struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Image           string           `json:"image"`
	Race            string           `json:"race"`
	Affiliation     string           `json:"affiliation"`
	Transformations []Transformation `json:"transformations"`
}

type page struct {
	Items []APICharacter `json:"items"`
	Meta  struct {
		TotalPages int `json:"totalPages"`
	} `json:"meta"`
}

// Client fetches the public Dragon Ball character catalog.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FetchAll walks every page of the catalog. The list endpoint omits
// transformations, so each character is re-fetched individually; when a detail
// fetch fails the basic record is kept instead.
func (c *Client) FetchAll(ctx context.Context) ([]APICharacter, error) {
	var all []APICharacter
	for currentPage, totalPages := 1, 1; currentPage <= totalPages; currentPage++ {
		var p page
		url := fmt.Sprintf("%s/characters?page=%d&limit=100", c.baseURL, currentPage)
		if err := c.getJSON(ctx, url, &p); err != nil {
			return nil, err
		}
		totalPages = p.Meta.TotalPages
		for _, item := range p.Items {
			var detail APICharacter
			detailURL := fmt.Sprintf("%s/characters/%d", c.baseURL, item.ID)
			if err := c.getJSON(ctx, detailURL, &detail); err != nil {
				c.logger.Warn("character detail fetch failed, keeping basic record",
					zap.Int("id", item.ID), zap.Error(err))
				all = append(all, item)
				continue
			}
			all = append(all, detail)
		}
	}
	return all, nil
}

// Filter narrows the catalog before conversion to game characters.
type Filter struct {
	Races                  []string `json:"races"`
	Affiliations           []string `json:"affiliations"`
	IncludeTransformations bool     `json:"includeTransformations"`
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// FilterCharacters applies race/affiliation filters and converts the survivors
// to game characters, optionally flattening transformations into distinct
// entries alongside their base form.
func FilterCharacters(chars []APICharacter, f Filter) []theme.Character {
	filtered := chars
	if len(f.Races) > 0 {
		kept := filtered[:0:0]
		for _, ch := range filtered {
			if contains(f.Races, ch.Race) {
				kept = append(kept, ch)
			}
		}
		filtered = kept
	}
	if len(f.Affiliations) > 0 {
		kept := filtered[:0:0]
		for _, ch := range filtered {
			if contains(f.Affiliations, ch.Affiliation) {
				kept = append(kept, ch)
			}
		}
		filtered = kept
	}

	out := make([]theme.Character, 0, len(filtered))
	for _, ch := range filtered {
		out = append(out, theme.Character{Name: ch.Name, ImageURL: ch.Image})
		if !f.IncludeTransformations {
			continue
		}
		for _, tr := range ch.Transformations {
			out = append(out, theme.Character{Name: tr.Name, ImageURL: tr.Image})
		}
	}
	return out
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// UniqueRaces lists the distinct races present in the catalog.
func UniqueRaces(chars []APICharacter) []string {
	races := make([]string, 0, len(chars))
	for _, ch := range chars {
		races = append(races, ch.Race)
	}
	return uniqueSorted(races)
}

// UniqueAffiliations lists the distinct affiliations present in the catalog.
func UniqueAffiliations(chars []APICharacter) []string {
	affiliations := make([]string, 0, len(chars))
	for _, ch := range chars {
		affiliations = append(affiliations, ch.Affiliation)
	}
	return uniqueSorted(affiliations)
}
