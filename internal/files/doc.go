// Package files groups query document discovery.
//
// Sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: walks a query tree and digests every query document
//
// # Usage
//
//	hasher := digest.New()
//	s := scanner.NewScanner(hasher, scanner.WithExtensions(".graphql"))
//	queries, err := s.ScanDirectory(ctx, "./queries")
package files
