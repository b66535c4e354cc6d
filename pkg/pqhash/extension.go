package pqhash

// PersistedQuery is the body of the persistedQuery request extension.
type PersistedQuery struct {
	Version    int    `json:"version" yaml:"version"`
	SHA256Hash string `json:"sha256Hash" yaml:"sha256Hash"`
}

// PersistedQueryExtension is the extensions object a transport attaches to a
// request when it sends a digest in place of the query text.
type PersistedQueryExtension struct {
	PersistedQuery PersistedQuery `json:"persistedQuery" yaml:"persistedQuery"`
}

// NewPersistedQueryExtension builds the extension for a hex digest.
// It returns false for an empty digest: the caller must send the full query.
func NewPersistedQueryExtension(hexDigest string) (PersistedQueryExtension, bool) {
	if hexDigest == "" {
		return PersistedQueryExtension{}, false
	}
	return PersistedQueryExtension{
		PersistedQuery: PersistedQuery{
			Version:    PersistedQueryVersion,
			SHA256Hash: hexDigest,
		},
	}, true
}
