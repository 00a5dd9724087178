// Package policy renders the parameterized permission documents that ship
// alongside the tracking server: statement lists whose resource names
// carry {{param}} placeholders (account ids, bucket names, ARN fragments).
//
// The package only produces documents for an external provisioning engine
// to apply. It does not evaluate grants and knows nothing about permission
// semantics.
package policy
