// Package fetch - platform.go provides professional-network detection and
// network-specific content selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Network represents a known professional-network platform.
type Network string

const (
	// NetworkLinkedIn is a LinkedIn public profile page
	NetworkLinkedIn Network = "linkedin"
	// NetworkLattes is a Lattes (CNPq) curriculum page
	NetworkLattes Network = "lattes"
	// NetworkGitHub is a GitHub profile page
	NetworkGitHub Network = "github"
	// NetworkUnknown is an unrecognized host
	NetworkUnknown Network = "unknown"
)

// DetectNetwork identifies the professional network from a profile URL.
func DetectNetwork(urlStr string) Network {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return NetworkUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "linkedin.com"):
		return NetworkLinkedIn
	case strings.Contains(host, "lattes.cnpq.br"):
		return NetworkLattes
	case strings.Contains(host, "github.com"):
		return NetworkGitHub
	default:
		return NetworkUnknown
	}
}

// ProfileSelectors returns the content selectors for a network's profile
// pages, most specific first.
func ProfileSelectors(network Network) []string {
	switch network {
	case NetworkLinkedIn:
		return []string{
			"main.scaffold-layout__main",
			"section.profile-section",
			"main",
		}
	case NetworkLattes:
		return []string{
			".layout-cell-pad-main",
			"#content",
		}
	case NetworkGitHub:
		return []string{
			".vcard-details",
			"main",
		}
	default:
		return []string{"main", "article", ".content", "#content"}
	}
}
