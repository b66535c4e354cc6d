// Package platform provides the digest facilities a runtime may expose besides the
// native crypto/sha256 implementation.
//
// Two shapes are modelled:
//
//   - Subtle: a Web-Crypto-style facility whose Digest returns a channel that
//     eventually yields one DigestResult (the promise-like shape).
//   - LegacySubtle: the older callback shape, whose Digest returns an Operation
//     that reports completion through OnComplete/OnError handlers.
//
// AsyncCrypto and CallbackCrypto are goroutine-backed implementations of both
// shapes. An Environment bundles whichever facilities are present; a nil field
// means the facility is absent.
package platform
