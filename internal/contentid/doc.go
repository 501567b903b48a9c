// Package contentid computes content fingerprints used as exact-equality
// proxies during duplicate detection.
//
// A fingerprint is the hex-encoded SHA-256 digest of a file's full byte
// content, read in bounded chunks so memory stays constant regardless of file
// size. Digest equality is treated as content equality; no secondary
// byte-for-byte verification is performed.
//
// The planner consults fingerprints only when a destination collision makes
// them necessary, and the CountingHasher decorator exists so tests can assert
// that cost-avoidance property.
package contentid
