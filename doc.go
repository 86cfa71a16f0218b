// Package idgen generates 128-bit identifiers shaped like UUIDs.
//
// The main generator, Alternative, reads an 8-byte seed from a
// cryptographically secure source once and then draws every identifier from
// a fast, non-cryptographic pseudo-random generator seeded with it. This keeps
// per-id cost low while the sequence stays unpredictable enough for
// correlation ids, message ids and similar non-adversarial uses.
//
// Identifiers are raw random bits: no RFC 4122 version or variant bits are
// set. Callers that need standard version-4 UUIDs should use Secure.
//
// Typical usage:
//
//	gen, err := idgen.NewAlternative()
//	if err != nil {
//		return err
//	}
//	id := gen.GenerateID()
//	hi, lo := idgen.Bits(id)
//
// Generators can also be built from a serialisable Config:
//
//	cfg := idgen.DefaultConfig()
//	cfg.Strategy = idgen.StrategyStriped
//	gen, err := idgen.NewFromConfig(cfg)
package idgen
