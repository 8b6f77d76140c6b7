package keys

import (
	"strings"
)

const (
	// PfxCollectionInfo prefixes cached getBrandInfo results
	PfxCollectionInfo = "collectionInfo"
	// PfxOverview prefixes the aggregated collection list held per wallet
	PfxOverview = "overview"
	// PfxSignInNonce prefixes one-time wallet sign-in nonces
	PfxSignInNonce = "signInNonce"
	// PfxEns prefixes ENS resolutions
	PfxEns = "ens"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// Key joins cache key components with ":"
func Key(components ...string) string {
	return CustomKey(":", components...)
}
