// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth identifies partners and validates partner keys.

# Partners

The service has exactly two configured partners. ResolvePartner lowercases a
user name from a request and rejects anyone else:

	user, err := auth.ResolvePartner("Nick", cfg.Partners) // "nick"

# Partner Keys

When a salt is configured, partner keys use HMAC-SHA256 to create
deterministic, verifiable keys:

	key := auth.GeneratePartnerKey("nick", salt)
	err := auth.ValidatePartnerKey("nick", key, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
nothing needs to be stored. Clients send it in the X-Partner-Key header.

KeyOwner finds which partner a key belongs to, for routes that are not scoped
to one partner (such as /compare).
*/
package auth
