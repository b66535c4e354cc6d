package pqhash

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitDigestFailed = 13 // The selected backend failed to compute a digest
	ExitNoQueryInput = 14 // No query text was provided
)

const (
	// Algorithm is the digest algorithm identifier handed to platform digest facilities.
	Algorithm = "SHA-256"

	// DigestSize is the length in bytes of a raw SHA-256 digest.
	DigestSize = 32

	// HexDigestLength is the length of the lowercase hex digest string.
	HexDigestLength = DigestSize * 2

	// PersistedQueryVersion is the protocol version sent in the persistedQuery extension.
	PersistedQueryVersion = 1

	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "pqhash.yaml"

	// EnvBackends overrides the backend priority list (comma separated kinds).
	EnvBackends = "PQHASH_BACKENDS"

	// EnvEncoder overrides the text encoder used by the byte-oriented backends.
	EnvEncoder = "PQHASH_ENCODER"
)
